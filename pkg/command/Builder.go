package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

type Builder struct {
	parent  string
	name    string
	short   string
	flags   func(cmd *cobra.Command)
	args    cobra.PositionalArgs
	command func(cmd *cobra.Command, args []string) error
}

func NewBuilder() *Builder {
	return &Builder{
		args:    cobra.NoArgs,
		flags:   EmptyFlag,
		command: EmptyFunction,
	}
}

func (cb *Builder) Parent(parent string) *Builder {
	cb.parent = parent
	return cb
}

func (cb *Builder) Name(name string) *Builder {
	cb.name = name
	return cb
}

func (cb *Builder) Short(short string) *Builder {
	cb.short = short
	return cb
}

func (cb *Builder) Flags(flags func(cmd *cobra.Command)) *Builder {
	cb.flags = flags
	return cb
}

func (cb *Builder) Args(args cobra.PositionalArgs) *Builder {
	cb.args = args
	return cb
}

func (cb *Builder) Function(fn func(cmd *cobra.Command, args []string) error) *Builder {
	cb.command = fn
	return cb
}

func (cb *Builder) Build() Command {
	return Command{
		Parent:  cb.parent,
		Name:    cb.name,
		Short:   cb.short,
		Args:    cb.args,
		Flags:   cb.flags,
		Command: cb.command,
	}
}

func (cb *Builder) Validate() error {
	if cb.name == "" {
		return fmt.Errorf("command name is required")
	}
	if cb.parent == "" {
		return fmt.Errorf("command parent is required")
	}
	return nil
}

func (cb *Builder) BuildWithValidation() Command {
	if err := cb.Validate(); err != nil {
		panic(err)
	}

	return cb.Build()
}
