package commands

import (
	"fmt"

	"github.com/simplecontainer/massview/pkg/command"
	"github.com/simplecontainer/massview/pkg/configuration"
	"github.com/simplecontainer/massview/pkg/static"
	"github.com/spf13/cobra"
)

func Config() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.SERVICE_NAME).
			Name("config").
			Short("Print the effective configuration as YAML").
			Function(cmdConfig).
			Flags(cmdConfigFlags).
			BuildWithValidation(),
	)
}

func cmdConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("write")

	if path != "" {
		return configuration.Save(loaded, path)
	}

	bytes, err := loaded.ToYaml()

	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), string(bytes))
	return err
}

func cmdConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("write", "", "Write the configuration to this path instead of stdout")
}
