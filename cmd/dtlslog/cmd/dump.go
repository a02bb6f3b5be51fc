package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/philipp01105/dtlslog/core"
	"github.com/philipp01105/dtlslog/formatter"
)

type dumpOptions struct {
	compact  bool
	raw      bool
	severity string
	name     string
}

func newDumpCommand(opts *options) *cobra.Command {
	dopts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump [flags] <file|->",
		Short: "Hex-dump a file or stdin",
		Long: `Hex-dump a file, or stdin when the argument is "-".

The dump goes through the logger: it is subject to the level gate and
to the buffer size. With --raw the bytes are written straight to
stdout without header or bound.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, opts, dopts, args[0])
		},
	}

	cmd.Flags().BoolVar(&dopts.compact, "compact", false, "one line of hex digits instead of rows")
	cmd.Flags().BoolVar(&dopts.raw, "raw", false, "write the dump directly to stdout, bypassing the logger")
	cmd.Flags().StringVar(&dopts.severity, "severity", core.WarnLevel.String(), "level the dump is logged at")
	cmd.Flags().StringVar(&dopts.name, "name", "", "label of the dump (default: file name)")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

func runDump(cmd *cobra.Command, opts *options, dopts *dumpOptions, path string) error {
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	if dopts.raw {
		if dopts.compact {
			return formatter.WriteNarrow(cmd.OutOrStdout(), data)
		}
		return formatter.WriteTable(cmd.OutOrStdout(), data)
	}

	level, err := core.ParseLevel(dopts.severity)
	if err != nil {
		return err
	}
	name := dopts.name
	if name == "" {
		name = "stdin"
		if path != "-" {
			name = filepath.Base(path)
		}
	}

	l, closer, err := opts.buildLogger(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	l.HexDump(level, name, data, !dopts.compact)
	return nil
}
