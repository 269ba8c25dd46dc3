package parser

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/simplecontainer/massview/pkg/events"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Parse reads headerless invariant_mass,particle_type,combination rows.
// Comma separated content is tried first; tab separated content is used
// when the comma reader fails or finds no usable rows.
func Parse(content []byte) (*events.Dataset, error) {
	if !utf8.Valid(content) {
		return nil, errors.New("content is not valid UTF-8")
	}

	content = bytes.TrimPrefix(content, bom)

	dataset, err := Read(bytes.NewReader(content), ',')

	if err == nil && !dataset.Empty() {
		return dataset, nil
	}

	tabbed, tabErr := Read(bytes.NewReader(content), '\t')

	if tabErr != nil {
		if err != nil {
			return nil, err
		}

		return dataset, nil
	}

	return tabbed, nil
}

func Read(reader io.Reader, separator rune) (*events.Dataset, error) {
	r := csv.NewReader(reader)
	r.Comma = separator
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = true

	collected := make([]events.Event, 0)

	for {
		record, err := r.Read()

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %q separated content", separator)
		}

		if event, ok := ToEvent(record); ok {
			collected = append(collected, event)
		}
	}

	return events.NewDataset(collected), nil
}

// ToEvent converts one record, reporting false for rows that must be dropped.
func ToEvent(record []string) (events.Event, bool) {
	if len(record) < 2 {
		return events.Event{}, false
	}

	mass, ok := number(record[0])

	if !ok {
		return events.Event{}, false
	}

	particleType, ok := number(record[1])

	if !ok || math.Abs(particleType) > math.MaxInt32 {
		return events.Event{}, false
	}

	combination := ""

	if len(record) > 2 {
		combination = strings.TrimSpace(record[2])
	}

	return events.Event{
		InvariantMass: mass,
		ParticleType:  int(particleType),
		Combination:   combination,
	}, true
}

func number(field string) (float64, bool) {
	field = strings.TrimSpace(field)

	if field == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(field, 64)

	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}
