package analysis

import (
	"strings"

	"github.com/simplecontainer/massview/pkg/histogram"
	"github.com/simplecontainer/massview/pkg/static"
)

var views = []histogram.Spec{
	{
		Key:   static.VIEW_DILEPTON,
		Title: "Dilepton Invariant Mass Distribution",
		Series: []histogram.Series{
			histogram.Particle(static.PARTICLE_ELECTRON),
			histogram.Particle(static.PARTICLE_MUON),
		},
		Stacked: true,
	},
	{
		Key:   static.VIEW_FOURLEPTON,
		Title: "Four Lepton Invariant Mass Distribution",
		Series: []histogram.Series{
			histogram.Combination(static.COMBINATION_4EE),
			histogram.Combination(static.COMBINATION_4MM),
			histogram.Combination(static.COMBINATION_4ME),
		},
	},
	{
		Key:   static.VIEW_DIPHOTON,
		Title: "Diphoton Invariant Mass Distribution",
		Series: []histogram.Series{
			histogram.Particle(static.PARTICLE_PHOTON),
		},
	},
}

// Views returns the histogram specs selected by a view mode. An empty
// mode selects every view, an unknown one selects none.
func Views(mode string) []histogram.Spec {
	mode = strings.TrimSpace(mode)

	if mode == "" {
		mode = static.VIEW_ALL
	}

	selected := make([]histogram.Spec, 0, len(views))

	for _, view := range views {
		if mode == static.VIEW_ALL || mode == view.Key {
			selected = append(selected, view)
		}
	}

	return selected
}
