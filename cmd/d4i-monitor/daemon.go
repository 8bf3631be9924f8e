package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/0xamirreza/Docker4Iran/internal/config"
	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/monitor"
	"github.com/0xamirreza/Docker4Iran/internal/paths"
)

func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.MonitorDaemonUse,
		Short: messages.MonitorDaemonShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.Current()
			if err != nil {
				return err
			}
			cfg, err := config.Load(paths.ConfigFile)
			if err != nil {
				return err
			}
			if cfg.Monitor.LogPath != "" {
				p.LogFile = cfg.Monitor.LogPath
			}

			// SIGTERM is systemd's stop signal; cancellation is the
			// daemon's only exit path.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return monitor.NewDaemon(p, cfg.MonitorInterval()).Run(ctx)
		},
	}
}
