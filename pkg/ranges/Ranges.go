package ranges

import "fmt"

// Range is an inclusive invariant mass window in GeV.
type Range struct {
	Name string
	Min  float64
	Max  float64
}

var Energy = []Range{
	{Name: "R1", Min: 2, Max: 4},
	{Name: "R2", Min: 7, Max: 13},
	{Name: "R3", Min: 80, Max: 100},
	{Name: "R4", Min: 900, Max: 1100},
	{Name: "R5", Min: 1400, Max: 1600},
}

func (r Range) Contains(mass float64) bool {
	return mass >= r.Min && mass <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%s (%g-%g GeV)", r.Name, r.Min, r.Max)
}
