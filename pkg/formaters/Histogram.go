package formaters

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/simplecontainer/massview/pkg/events"
	"github.com/simplecontainer/massview/pkg/histogram"
)

const barWidth = 40

// Histogram prints one text histogram per non-empty series.
func Histogram(out io.Writer, ds *events.Dataset, spec histogram.Spec, bins int, logScale bool) {
	titleFmt := color.New(color.FgGreen, color.Bold).SprintfFunc()

	fmt.Fprintf(out, "\n%s\n", titleFmt(spec.Title))

	for _, series := range spec.Series {
		masses := events.Masses(series.Select(ds))

		if len(masses) == 0 {
			continue
		}

		buckets := histogram.Bin(masses, bins, logScale)

		fmt.Fprintf(out, "%s (%d events)\n", series.Label(), len(masses))
		Bars(out, buckets)
	}
}

func Bars(out io.Writer, buckets []histogram.Bucket) {
	peak := 0

	for _, bucket := range buckets {
		if bucket.Count > peak {
			peak = bucket.Count
		}
	}

	for _, bucket := range buckets {
		width := 0

		if peak > 0 {
			width = bucket.Count * barWidth / peak
		}

		fmt.Fprintf(out, "  %10.2f - %-10.2f |%-*s| %d\n", bucket.Low, bucket.High, barWidth, strings.Repeat("#", width), bucket.Count)
	}
}
