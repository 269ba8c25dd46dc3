package events

// Event is a single reconstructed candidate: the invariant mass of the
// final state, the particle type it was built from and, for four lepton
// candidates, the lepton combination (4ee, 4mm, 4me).
type Event struct {
	InvariantMass float64 `json:"invariant_mass"`
	ParticleType  int     `json:"particle_type"`
	Combination   string  `json:"combination"`
}

type Dataset struct {
	Events []Event `json:"events"`
}
