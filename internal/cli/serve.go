package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-hotseat/internal"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the game page, JSON API and websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			logger := initLogger(os.Stdout, conf)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return application.RunApp(ctx, logger, conf)
		},
	}
}
