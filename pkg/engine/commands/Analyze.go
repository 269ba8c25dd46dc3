package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/simplecontainer/massview/pkg/analysis"
	"github.com/simplecontainer/massview/pkg/command"
	"github.com/simplecontainer/massview/pkg/formaters"
	"github.com/simplecontainer/massview/pkg/histogram"
	"github.com/simplecontainer/massview/pkg/parser"
	"github.com/simplecontainer/massview/pkg/static"
	"github.com/simplecontainer/massview/pkg/statistics"
	"github.com/spf13/cobra"
)

func Analyze() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.SERVICE_NAME).
			Name("analyze").
			Short("Analyze a local event file and print statistics and histograms").
			Args(cobra.ExactArgs(1)).
			Function(cmdAnalyze).
			Flags(cmdAnalyzeFlags).
			BuildWithValidation(),
	)
}

func cmdAnalyze(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])

	if err != nil {
		return errors.Wrapf(err, "failed to read %s", args[0])
	}

	dataset, err := parser.Parse(content)

	if err != nil {
		return errors.Wrapf(err, "failed to parse %s", args[0])
	}

	if dataset.Empty() {
		return errors.New(static.RESPONSE_NO_DATA)
	}

	bins, _ := cmd.Flags().GetString("bins")
	logScale, _ := cmd.Flags().GetBool("log-scale")
	view, _ := cmd.Flags().GetString("view")
	asJson, _ := cmd.Flags().GetBool("json")

	out := cmd.OutOrStdout()

	if asJson {
		result, err := analysis.Analyze(dataset, analysis.Options{
			NumBins:     bins,
			LogScale:    logScale,
			ViewMode:    view,
			DefaultBins: loaded.Analysis.DefaultBins,
		})

		if err != nil {
			return err
		}

		var json = jsoniter.ConfigCompatibleWithStandardLibrary

		bytes, err := json.MarshalIndent(result, "", "  ")

		if err != nil {
			return errors.Wrap(err, "failed to encode result")
		}

		_, err = fmt.Fprintln(out, string(bytes))
		return err
	}

	fmt.Fprintf(out, "%s: %d events (%s)\n", args[0], dataset.Len(), humanize.IBytes(uint64(len(content))))

	formaters.Statistics(out, statistics.Summarize(dataset))

	resolved := histogram.ResolveBins(bins, loaded.Analysis.DefaultBins)

	for _, spec := range analysis.Views(view) {
		formaters.Histogram(out, dataset, spec, resolved, logScale)
	}

	return nil
}

func cmdAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().String("bins", "", "Number of histogram bins, invalid values fall back to the configured default")
	cmd.Flags().Bool("log-scale", false, "Logarithmic invariant mass axis")
	cmd.Flags().String("view", static.VIEW_ALL, "View: all, dilepton, fourlepton, diphoton")
	cmd.Flags().Bool("json", false, "Print the upload response document instead of tables")
}
