package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/philipp01105/dtlslog/config"
	"github.com/philipp01105/dtlslog/logger"
)

// options holds the persistent flags shared by every subcommand
type options struct {
	configFile   string
	level        string
	bufferSize   int
	coarseClock  bool
	noTimestamps bool
	constrained  bool
}

// NewRootCommand builds the dtlslog command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "dtlslog",
		Short: "Bounded-buffer debug logger for DTLS stacks",
		Long: `dtlslog drives the bounded-buffer debug logger from the shell.

Messages are rendered into a fixed-size buffer; output that does not
fit ends with " ...". Hex dumps are printed either as one line or as
rows of 16 bytes.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (.yaml, .yml or .toml)")
	flags.StringVar(&opts.level, "level", "", "level gate (EMERG..DEBUG, tag or 0..6)")
	flags.IntVar(&opts.bufferSize, "buffer-size", 0, "message buffer size in bytes")
	flags.BoolVar(&opts.coarseClock, "coarse-clock", false, "read timestamps from the cached coarse clock")
	flags.BoolVar(&opts.noTimestamps, "no-timestamps", false, "omit the timestamp prefix")
	flags.BoolVar(&opts.constrained, "constrained-stack", false, "use one shared buffer guarded by a mutex")

	root.AddCommand(
		newLogCommand(opts),
		newDumpCommand(opts),
		newViewCommand(),
		newStatsCommand(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig starts from the config file, if any, and applies the
// flags that were set explicitly.
func (o *options) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		var err error
		if cfg, err = config.Load(o.configFile); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		cfg.Level = o.level
	}
	if flags.Changed("buffer-size") {
		cfg.BufferSize = o.bufferSize
	}
	if flags.Changed("coarse-clock") {
		cfg.CoarseClock = o.coarseClock
	}
	if flags.Changed("no-timestamps") {
		cfg.Timestamps = !o.noTimestamps
	}
	if flags.Changed("constrained-stack") {
		cfg.ConstrainedStack = o.constrained
	}
	cfg.Stdout = cmd.OutOrStdout()
	cfg.Stderr = cmd.ErrOrStderr()
	return cfg, nil
}

// buildLogger returns the configured logger and the closer of its output.
func (o *options) buildLogger(cmd *cobra.Command) (*logger.Logger, io.Closer, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	return cfg.Build()
}
