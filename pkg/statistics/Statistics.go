package statistics

import (
	"math"

	"github.com/simplecontainer/massview/pkg/events"
	"github.com/simplecontainer/massview/pkg/ranges"
	"github.com/simplecontainer/massview/pkg/static"
	"gonum.org/v1/gonum/stat"
)

// Calculate counts the events of the given particle types inside every
// energy range and closes the table with a Total row.
func Calculate(ds *events.Dataset, particleTypes []int) []Row {
	filtered := events.Masses(ds.ByParticleType(particleTypes...))
	rows := make([]Row, 0, len(ranges.Energy)+1)

	for _, r := range ranges.Energy {
		inside := make([]float64, 0)

		for _, mass := range filtered {
			if r.Contains(mass) {
				inside = append(inside, mass)
			}
		}

		rows = append(rows, Row{
			Range:  r.String(),
			Events: len(inside),
			Mean:   mean(inside),
		})
	}

	return append(rows, Row{
		Range:  TotalRange,
		Events: len(filtered),
		Mean:   mean(filtered),
	})
}

func Summarize(ds *events.Dataset) Summary {
	return Summary{
		Electrons: Calculate(ds, []int{static.PARTICLE_ELECTRON}),
		Muons:     Calculate(ds, []int{static.PARTICLE_MUON}),
		Photons:   Calculate(ds, []int{static.PARTICLE_PHOTON}),
	}
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}

	rounded := Round(stat.Mean(values, nil), 2)
	return &rounded
}

func Round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(value*scale) / scale
}
