package formaters

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/simplecontainer/massview/pkg/statistics"
)

func Statistics(out io.Writer, summary statistics.Summary) {
	sections := []struct {
		title string
		rows  []statistics.Row
	}{
		{"Electrons", summary.Electrons},
		{"Muons", summary.Muons},
		{"Photons", summary.Photons},
	}

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	for _, section := range sections {
		fmt.Fprintf(out, "\n%s\n", section.title)

		tbl := table.New("RANGE", "EVENTS", "MEAN (GeV)").WithWriter(out)
		tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

		for _, row := range section.rows {
			tbl.AddRow(row.Range, row.Events, row.MeanString())
		}

		tbl.Print()
	}
}
