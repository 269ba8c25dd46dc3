package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/simplecontainer/massview/pkg/api"
	"github.com/simplecontainer/massview/pkg/command"
	"github.com/simplecontainer/massview/pkg/logger"
	"github.com/simplecontainer/massview/pkg/static"
	"github.com/simplecontainer/massview/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func Serve() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.SERVICE_NAME).
			Name("serve").
			Short("Serve the upload page and analysis API").
			Function(cmdServe).
			Flags(cmdServeFlags).
			BuildWithValidation(),
	)
}

func cmdServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := api.NewApi(loaded, logger.Log)
	a.Version = version.New(ServiceVersion)

	logger.Log.Info("starting massview",
		zap.String("version", a.Version.Service),
		zap.String("address", loaded.Address()),
	)

	return a.Serve(ctx)
}

func cmdServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("http.host", static.DEFAULT_HOST, "Listening interface")
	cmd.Flags().Int("http.port", static.DEFAULT_PORT, "Listening port")
}
