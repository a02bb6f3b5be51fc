package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipp01105/dtlslog/core"
	"github.com/philipp01105/dtlslog/formatter"
	"github.com/philipp01105/dtlslog/handler/filehandler"
)

// CaptureStats holds aggregate statistics about a capture file.
type CaptureStats struct {
	Total     int
	ByLevel   map[core.Level]int
	Truncated int
	TimeRange struct {
		Start time.Time
		End   time.Time
	}
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <capture.cbor>",
		Short: "Summarize a CBOR capture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunStats(args[0], cmd.OutOrStdout())
		},
	}
}

// CollectStats reads every record of the capture at path.
func CollectStats(path string) (*CaptureStats, error) {
	reader, err := filehandler.NewReader(path, filehandler.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	stats := &CaptureStats{ByLevel: make(map[core.Level]int)}
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		stats.Total++
		stats.ByLevel[rec.Level]++
		if strings.HasSuffix(rec.Message, formatter.TruncationMarker) {
			stats.Truncated++
		}
		if stats.TimeRange.Start.IsZero() || rec.Time.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = rec.Time
		}
		if rec.Time.After(stats.TimeRange.End) {
			stats.TimeRange.End = rec.Time
		}
	}
}

// RunStats prints the statistics of the capture at path.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Records:   %d\n", stats.Total)
	fmt.Fprintf(w, "Truncated: %d\n", stats.Truncated)
	if stats.Total > 0 {
		fmt.Fprintf(w, "First:     %s\n", stats.TimeRange.Start.UTC().Format(time.RFC3339))
		fmt.Fprintf(w, "Last:      %s\n", stats.TimeRange.End.UTC().Format(time.RFC3339))
	}
	fmt.Fprintln(w, "By level:")
	for _, level := range core.AllLevels() {
		if n := stats.ByLevel[level]; n > 0 {
			fmt.Fprintf(w, "  %-6s %d\n", level.String()+":", n)
		}
	}
	return nil
}
