package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipp01105/dtlslog/core"
	"github.com/philipp01105/dtlslog/handler/filehandler"
)

type viewOptions struct {
	maxLevel string
	grep     string
}

func newViewCommand() *cobra.Command {
	vopts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view [flags] <capture.cbor>",
		Short: "Print the records of a CBOR capture file",
		Example: `  dtlslog view capture.cbor
  dtlslog view --max-level crit --grep cookie capture.cbor`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := vopts.filter()
			if err != nil {
				return err
			}
			return RunView(args[0], filter, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&vopts.maxLevel, "max-level", "", "only records at this level or more severe")
	cmd.Flags().StringVar(&vopts.grep, "grep", "", "only records whose message contains this text")
	return cmd
}

func (v *viewOptions) filter() (filehandler.Filter, error) {
	filter := filehandler.Filter{Contains: v.grep}
	if v.maxLevel != "" {
		level, err := core.ParseLevel(v.maxLevel)
		if err != nil {
			return filehandler.Filter{}, err
		}
		filter.MaxLevel = &level
	}
	return filter, nil
}

// RunView prints every record of the capture at path that passes filter.
func RunView(path string, filter filehandler.Filter, w io.Writer) error {
	reader, err := filehandler.NewReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	for {
		rec, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}
		fmt.Fprint(w, formatRecord(rec))
	}
}

func formatRecord(rec filehandler.Record) string {
	tag, ok := rec.Level.Tag()
	if !ok {
		tag = rec.Level.String()
	}
	msg := rec.Message
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	return fmt.Sprintf("%s %s %s", rec.Time.UTC().Format(time.RFC3339Nano), tag, msg)
}
