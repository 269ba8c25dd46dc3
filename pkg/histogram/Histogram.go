package histogram

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/simplecontainer/massview/pkg/events"
	"github.com/simplecontainer/massview/pkg/static"
)

const (
	BarModeStack   = "stack"
	BarModeOverlay = "overlay"
	AxisLog        = "log"
)

// Build turns every non-empty series into a histogram trace.
// Plotly bins the x values client side using NBinsX.
func Build(ds *events.Dataset, spec Spec, opts Options) Figure {
	bins := opts.Bins

	if bins <= 0 {
		bins = static.DEFAULT_BINS
	}

	figure := Figure{
		Data: make([]Trace, 0, len(spec.Series)),
		Layout: Layout{
			Title:        Title{Text: spec.Title},
			XAxis:        axis("Invariant Mass (GeV)"),
			YAxis:        axis("Events"),
			BarMode:      BarModeOverlay,
			HoverMode:    "x unified",
			PaperBgColor: static.BACKGROUND_COLOR,
			PlotBgColor:  static.BACKGROUND_COLOR,
			Height:       static.DEFAULT_HEIGHT,
		},
	}

	if spec.Stacked {
		figure.Layout.BarMode = BarModeStack
	}

	// Only the x axis goes logarithmic, event counts stay linear.
	if opts.LogScale {
		figure.Layout.XAxis.Type = AxisLog
	}

	for _, series := range spec.Series {
		selected := series.Select(ds)

		if len(selected) == 0 {
			continue
		}

		figure.Data = append(figure.Data, Trace{
			Type:    "histogram",
			X:       events.Masses(selected),
			Name:    series.Label(),
			Marker:  Marker{Color: series.Color()},
			Opacity: static.DEFAULT_OPACITY,
			NBinsX:  bins,
		})
	}

	return figure
}

func axis(title string) Axis {
	return Axis{
		Title:         Title{Text: title},
		GridColor:     static.GRID_COLOR,
		LineColor:     static.GRID_COLOR,
		ZeroLineColor: static.GRID_COLOR,
	}
}

func (f Figure) JSON() (string, error) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	bytes, err := json.Marshal(f)

	if err != nil {
		return "", errors.Wrap(err, "failed to encode figure")
	}

	return string(bytes), nil
}

// ResolveBins accepts positive integers and falls back otherwise.
func ResolveBins(raw string, fallback int) int {
	if fallback <= 0 {
		fallback = static.DEFAULT_BINS
	}

	bins, err := strconv.Atoi(strings.TrimSpace(raw))

	if err != nil || bins <= 0 {
		return fallback
	}

	return bins
}
