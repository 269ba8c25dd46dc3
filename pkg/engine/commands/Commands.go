package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/simplecontainer/massview/pkg/command"
	"github.com/simplecontainer/massview/pkg/configuration"
	"github.com/simplecontainer/massview/pkg/logger"
	"github.com/simplecontainer/massview/pkg/startup"
	"github.com/simplecontainer/massview/pkg/static"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var Commands []command.Command

// ServiceVersion is stamped by the main package.
var ServiceVersion = ""

var loaded *configuration.Configuration

func PreloadCommands() {
	Commands = Commands[:0]

	Serve()
	Analyze()
	Config()
	Version()
}

func Run(c *cobra.Command, args []string) error {
	SetupGlobalFlags(c)

	c.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
	})

	c.SetArgs(args)

	c.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var bindErr error

		cmd.Flags().VisitAll(func(flag *pflag.Flag) {
			if err := viper.BindPFlag(flag.Name, flag); err != nil && bindErr == nil {
				bindErr = errors.Wrapf(err, "failed to bind flag '%s'", flag.Name)
			}
		})

		if bindErr != nil {
			return bindErr
		}

		conf, err := startup.Load(viper.GetViper())

		if err != nil {
			return err
		}

		log, err := logger.NewLogger(conf.Log, []string{"stdout"}, []string{"stderr"})

		if err != nil {
			return err
		}

		loaded = conf
		logger.Log = log

		return nil
	}

	for _, cmd := range Commands {
		cobraCmd := cmd.ToCobra()

		if cmd.Parent == static.SERVICE_NAME || cmd.Parent == "" {
			c.AddCommand(cobraCmd)
			continue
		}

		parent := findCommand(c, cmd.Parent)

		if parent == nil {
			return fmt.Errorf("parent command '%s' not found for '%s'", cmd.Parent, cmd.Name)
		}

		parent.AddCommand(cobraCmd)
	}

	return c.Execute()
}

func SetupGlobalFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("log", static.DEFAULT_LOG_LEVEL, "Log level: debug, info, warn, error, dpanic, panic, fatal")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
}

func findCommand(cmd *cobra.Command, name string) *cobra.Command {
	if cmd.Use == name {
		return cmd
	}
	for _, c := range cmd.Commands() {
		if result := findCommand(c, name); result != nil {
			return result
		}
	}
	return nil
}
