package commands

import (
	"fmt"

	"github.com/simplecontainer/massview/pkg/command"
	"github.com/simplecontainer/massview/pkg/static"
	"github.com/simplecontainer/massview/pkg/version"
	"github.com/spf13/cobra"
)

func Version() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.SERVICE_NAME).
			Name("version").
			Short("Print the version").
			Function(func(cmd *cobra.Command, args []string) error {
				v := version.New(ServiceVersion)
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", v.Service, v.Go)
				return err
			}).
			BuildWithValidation(),
	)
}
