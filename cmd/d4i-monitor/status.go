package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xamirreza/Docker4Iran/internal/config"
	"github.com/0xamirreza/Docker4Iran/internal/messages"
	"github.com/0xamirreza/Docker4Iran/internal/monitor"
	"github.com/0xamirreza/Docker4Iran/internal/paths"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.MonitorStatusUse,
		Short: messages.MonitorStatusShort,
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

			rec, ok, err := monitor.NewAppender(p.LogFile).Last()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				_, err = fmt.Fprintln(out, messages.MonitorNoRecords)
				return err
			}
			stamp := rec.Timestamp.Format(time.RFC3339)
			if rec.Healthy {
				_, err = fmt.Fprintf(out, messages.MonitorHealthyFmt+"\n", stamp, rec.Exited)
			} else {
				_, err = fmt.Fprintf(out, messages.MonitorUnhealthyFmt+"\n", stamp, rec.Error)
			}
			return err
		},
	}
}
