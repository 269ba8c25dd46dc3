package statistics

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

const TotalRange = "Total"
const NotAvailable = "N/A"

// Row summarises one energy range. Mean is nil when the range holds no events.
type Row struct {
	Range  string
	Events int
	Mean   *float64
}

type Summary struct {
	Electrons []Row `json:"electrons"`
	Muons     []Row `json:"muons"`
	Photons   []Row `json:"photons"`
}

type wireRow struct {
	Range  string      `json:"range"`
	Events int         `json:"events"`
	Mean   interface{} `json:"mean"`
}

func (r Row) MarshalJSON() ([]byte, error) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	wire := wireRow{
		Range:  r.Range,
		Events: r.Events,
		Mean:   NotAvailable,
	}

	if r.Mean != nil {
		wire.Mean = *r.Mean
	}

	return json.Marshal(wire)
}

func (r Row) MeanString() string {
	if r.Mean == nil {
		return NotAvailable
	}

	return strconv.FormatFloat(*r.Mean, 'f', 2, 64)
}
