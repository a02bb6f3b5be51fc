package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipp01105/dtlslog/core"
)

func newLogCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "log <level> <message...>",
		Short: "Emit one message at a level",
		Example: `  dtlslog log warn "handshake timeout"
  dtlslog --level debug log debug "epoch 1 started"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := core.ParseLevel(args[0])
			if err != nil {
				return err
			}

			l, closer, err := opts.buildLogger(cmd)
			if err != nil {
				return err
			}
			defer closer.Close()

			l.Logf(level, "%s\n", strings.Join(args[1:], " "))
			return nil
		},
	}
}
