package histogram

import (
	"strconv"
	"strings"

	"github.com/simplecontainer/massview/pkg/events"
	"github.com/simplecontainer/massview/pkg/static"
)

var colors = map[string]string{
	strconv.Itoa(static.PARTICLE_ELECTRON): "blue",
	strconv.Itoa(static.PARTICLE_MUON):     "red",
	strconv.Itoa(static.PARTICLE_PHOTON):   "green",
	static.COMBINATION_4EE:                 "darkblue",
	static.COMBINATION_4MM:                 "darkred",
	static.COMBINATION_4ME:                 "purple",
}

func Particle(particleType int) Series {
	return Series{ParticleType: particleType}
}

func Combination(name string) Series {
	return Series{Combination: name}
}

func (s Series) IsCombination() bool {
	return s.Combination != ""
}

func (s Series) Select(ds *events.Dataset) []events.Event {
	if s.IsCombination() {
		return ds.ByCombination(s.Combination)
	}

	return ds.ByParticleType(s.ParticleType)
}

func (s Series) Label() string {
	if s.IsCombination() {
		return strings.ToUpper(s.Combination)
	}

	if label, ok := events.ParticleLabel(s.ParticleType); ok {
		return label
	}

	return strconv.Itoa(s.ParticleType)
}

func (s Series) Color() string {
	key := strconv.Itoa(s.ParticleType)

	if s.IsCombination() {
		key = strings.ToLower(s.Combination)
	}

	if color, ok := colors[key]; ok {
		return color
	}

	return static.DEFAULT_COLOR
}
