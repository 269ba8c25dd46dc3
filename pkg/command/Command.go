package command

import (
	"fmt"

	"github.com/simplecontainer/massview/pkg/static"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:           static.SERVICE_NAME,
		Short:         "Invariant mass histograms and energy range statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func (command Command) ToCobra() *cobra.Command {
	short := command.Short

	if short == "" {
		short = fmt.Sprintf("%s %s", command.Parent, command.Name)
	}

	cobraCmd := &cobra.Command{
		Use:   command.Name,
		Short: short,
		Args:  command.Args,
		RunE:  command.Command,
	}

	command.Flags(cobraCmd)

	return cobraCmd
}
