package histogram

import (
	"sort"

	"github.com/simplecontainer/massview/pkg/static"
	"gonum.org/v1/gonum/floats"
)

// Bin counts values into equal width buckets spanning their range, or
// log-spaced buckets when logScale is set. Non-positive values are
// ignored on a log scale.
func Bin(values []float64, bins int, logScale bool) []Bucket {
	if bins <= 0 {
		bins = static.DEFAULT_BINS
	}

	data := make([]float64, 0, len(values))

	for _, v := range values {
		if logScale && v <= 0 {
			continue
		}

		data = append(data, v)
	}

	if len(data) == 0 {
		return []Bucket{}
	}

	low, high := floats.Min(data), floats.Max(data)

	if low == high {
		return []Bucket{{Low: low, High: high, Count: len(data)}}
	}

	edges := make([]float64, bins+1)

	if logScale {
		floats.LogSpan(edges, low, high)
	} else {
		floats.Span(edges, low, high)
	}

	edges[0], edges[bins] = low, high

	buckets := make([]Bucket, bins)

	for i := range buckets {
		buckets[i].Low = edges[i]
		buckets[i].High = edges[i+1]
	}

	for _, v := range data {
		i := sort.Search(bins, func(i int) bool { return edges[i+1] > v })

		if i == bins {
			i = bins - 1
		}

		buckets[i].Count++
	}

	return buckets
}
