package analysis

import "github.com/simplecontainer/massview/pkg/statistics"

type Options struct {
	NumBins     string
	LogScale    bool
	ViewMode    string
	DefaultBins int
}

// Result mirrors the upload response: each plot is a Plotly figure
// already encoded as a JSON string.
type Result struct {
	Plots      map[string]string  `json:"plots"`
	Statistics statistics.Summary `json:"statistics"`
}
