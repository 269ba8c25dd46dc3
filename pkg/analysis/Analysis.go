package analysis

import (
	"time"

	"github.com/pkg/errors"
	"github.com/simplecontainer/massview/pkg/events"
	"github.com/simplecontainer/massview/pkg/histogram"
	"github.com/simplecontainer/massview/pkg/metrics"
	"github.com/simplecontainer/massview/pkg/static"
	"github.com/simplecontainer/massview/pkg/statistics"
)

func Analyze(ds *events.Dataset, opts Options) (*Result, error) {
	if ds == nil || ds.Empty() {
		return nil, static.ErrEmptyDataset
	}

	start := time.Now()
	defer func() {
		metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	histogramOptions := histogram.Options{
		Bins:     histogram.ResolveBins(opts.NumBins, opts.DefaultBins),
		LogScale: opts.LogScale,
	}

	result := &Result{
		Plots:      make(map[string]string),
		Statistics: statistics.Summarize(ds),
	}

	for _, spec := range Views(opts.ViewMode) {
		encoded, err := histogram.Build(ds, spec, histogramOptions).JSON()

		if err != nil {
			return nil, errors.Wrapf(err, "failed to build %s histogram", spec.Key)
		}

		result.Plots[spec.Key] = encoded
	}

	return result, nil
}
