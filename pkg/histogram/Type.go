package histogram

// Figure is the subset of the Plotly figure schema the upload page renders.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type    string    `json:"type"`
	X       []float64 `json:"x"`
	Name    string    `json:"name"`
	Marker  Marker    `json:"marker"`
	Opacity float64   `json:"opacity"`
	NBinsX  int       `json:"nbinsx"`
}

type Marker struct {
	Color string `json:"color"`
}

// Layout carries the white theme colors inline, Plotly.js does not resolve
// named templates.
type Layout struct {
	Title        Title  `json:"title"`
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	BarMode      string `json:"barmode"`
	HoverMode    string `json:"hovermode"`
	PaperBgColor string `json:"paper_bgcolor"`
	PlotBgColor  string `json:"plot_bgcolor"`
	Height       int    `json:"height"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title         Title  `json:"title"`
	Type          string `json:"type,omitempty"`
	GridColor     string `json:"gridcolor"`
	LineColor     string `json:"linecolor"`
	ZeroLineColor string `json:"zerolinecolor"`
}

// Series selects the events of one trace, either by particle type or,
// when Combination is set, by four lepton combination.
type Series struct {
	ParticleType int
	Combination  string
}

type Spec struct {
	Key     string
	Title   string
	Series  []Series
	Stacked bool
}

type Options struct {
	Bins     int
	LogScale bool
}

type Bucket struct {
	Low   float64
	High  float64
	Count int
}
