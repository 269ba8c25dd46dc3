package command

import "github.com/spf13/cobra"

type Command struct {
	Parent  string
	Name    string
	Short   string
	Args    cobra.PositionalArgs
	Flags   func(cmd *cobra.Command)
	Command func(cmd *cobra.Command, args []string) error
}

var (
	EmptyFlag     = func(cmd *cobra.Command) {}
	EmptyFunction = func(cmd *cobra.Command, args []string) error { return nil }
)
