package events

import (
	"strings"

	"github.com/simplecontainer/massview/pkg/static"
)

func NewDataset(events []Event) *Dataset {
	if events == nil {
		events = make([]Event, 0)
	}

	return &Dataset{
		Events: events,
	}
}

func (ds *Dataset) Len() int {
	return len(ds.Events)
}

func (ds *Dataset) Empty() bool {
	return len(ds.Events) == 0
}

func (ds *Dataset) ByParticleType(types ...int) []Event {
	filtered := make([]Event, 0)

	for _, event := range ds.Events {
		for _, t := range types {
			if event.ParticleType == t {
				filtered = append(filtered, event)
				break
			}
		}
	}

	return filtered
}

func (ds *Dataset) ByCombination(name string) []Event {
	filtered := make([]Event, 0)

	for _, event := range ds.Events {
		if strings.EqualFold(event.Combination, name) {
			filtered = append(filtered, event)
		}
	}

	return filtered
}

func Masses(events []Event) []float64 {
	masses := make([]float64, len(events))

	for i, event := range events {
		masses[i] = event.InvariantMass
	}

	return masses
}

func ParticleLabel(particleType int) (string, bool) {
	switch particleType {
	case static.PARTICLE_ELECTRON:
		return "Electrons", true
	case static.PARTICLE_MUON:
		return "Muons", true
	case static.PARTICLE_PHOTON:
		return "Photons", true
	default:
		return "", false
	}
}
