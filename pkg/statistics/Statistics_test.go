package statistics

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/simplecontainer/massview/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset() *events.Dataset {
	return events.NewDataset([]events.Event{
		{InvariantMass: 2, ParticleType: 1},
		{InvariantMass: 4, ParticleType: 1},
		{InvariantMass: 3.333, ParticleType: 1},
		{InvariantMass: 91.0, ParticleType: 1},
		{InvariantMass: 50.0, ParticleType: 1},
		{InvariantMass: 91.2, ParticleType: 2},
		{InvariantMass: 1000, ParticleType: 2},
	})
}

func TestCalculate(t *testing.T) {
	rows := Calculate(dataset(), []int{1})

	require.Len(t, rows, 6)

	assert.Equal(t, "R1 (2-4 GeV)", rows[0].Range)
	assert.Equal(t, 3, rows[0].Events)
	assert.Equal(t, 3.11, *rows[0].Mean)

	assert.Equal(t, 0, rows[1].Events)
	assert.Nil(t, rows[1].Mean)

	assert.Equal(t, 1, rows[2].Events)
	assert.Equal(t, 91.0, *rows[2].Mean)

	assert.Equal(t, TotalRange, rows[5].Range)
	assert.Equal(t, 5, rows[5].Events)
	assert.Equal(t, 30.07, *rows[5].Mean)
}

func TestCalculate_NoEvents(t *testing.T) {
	rows := Calculate(dataset(), []int{3})

	require.Len(t, rows, 6)

	for _, row := range rows {
		assert.Equal(t, 0, row.Events)
		assert.Nil(t, row.Mean)
		assert.Equal(t, NotAvailable, row.MeanString())
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(dataset())

	assert.Equal(t, 5, summary.Electrons[5].Events)
	assert.Equal(t, 2, summary.Muons[5].Events)
	assert.Equal(t, 1, summary.Muons[3].Events)
	assert.Equal(t, 0, summary.Photons[5].Events)
}

func TestRow_MarshalJSON(t *testing.T) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	value := 91.19

	bytes, err := json.Marshal([]Row{
		{Range: "R3 (80-100 GeV)", Events: 2, Mean: &value},
		{Range: TotalRange, Events: 0},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"range":"R3 (80-100 GeV)","events":2,"mean":91.19},
		{"range":"Total","events":0,"mean":"N/A"}
	]`, string(bytes))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.11, Round(3.111, 2))
	assert.Equal(t, 3.12, Round(3.117, 2))
	assert.Equal(t, 3.0, Round(3, 2))
	assert.Equal(t, 2.12, Round(2.125, 2))
	assert.Equal(t, 2.38, Round(2.375, 2))
}

func TestCalculate_HalfRoundsToEven(t *testing.T) {
	ds := events.NewDataset([]events.Event{{InvariantMass: 2.125, ParticleType: 1}})

	rows := Calculate(ds, []int{1})

	require.Len(t, rows, 6)
	assert.Equal(t, 2.12, *rows[0].Mean)
	assert.Equal(t, 2.12, *rows[5].Mean)
}
