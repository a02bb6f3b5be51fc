package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/dtlslog/core"
	"github.com/philipp01105/dtlslog/formatter"
	"github.com/philipp01105/dtlslog/handler"
	"github.com/philipp01105/dtlslog/handler/consolehandler"
	"github.com/philipp01105/dtlslog/handler/filehandler"
	"github.com/philipp01105/dtlslog/handler/sloghandler"
	"github.com/philipp01105/dtlslog/handler/zaphandler"
	"github.com/philipp01105/dtlslog/logger"
)

// Output names accepted in Config.Output
const (
	OutputConsole = "console"
	OutputCapture = "capture"
	OutputZap     = "zap"
	OutputSlog    = "slog"
	OutputDiscard = "discard"
)

var (
	// ErrUnsupportedFormat is returned by Load for file extensions other
	// than .yaml, .yml and .toml.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrInvalidConfig wraps every failure reported by Validate.
	ErrInvalidConfig = errors.New("invalid config")
)

// Format is a configuration file format
type Format int

const (
	// FormatTOML is the TOML format
	FormatTOML Format = iota
	// FormatYAML is the YAML format
	FormatYAML
	// FormatUnknown is any other extension
	FormatUnknown
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config describes how to build a logger.
type Config struct {
	// Level is the initial gate, as a name, tag or number
	Level string `yaml:"level" toml:"level"`
	// BufferSize is the message buffer capacity, terminator included
	BufferSize int `yaml:"buffer_size" toml:"buffer_size"`
	// ConstrainedStack selects the shared, mutex-guarded buffer
	ConstrainedStack bool `yaml:"constrained_stack" toml:"constrained_stack"`
	// Timestamps enables the timestamp prefix of the console output
	Timestamps bool `yaml:"timestamps" toml:"timestamps"`
	// CoarseClock reads timestamps from the cached coarse clock
	CoarseClock bool `yaml:"coarse_clock" toml:"coarse_clock"`
	// Output is one of console, capture, zap, slog or discard
	Output string `yaml:"output" toml:"output"`
	// CaptureFile is the CBOR capture path used by the capture output
	CaptureFile string `yaml:"capture_file" toml:"capture_file"`

	// Stdout and Stderr replace the process streams for the console,
	// zap and slog outputs.
	Stdout io.Writer `yaml:"-" toml:"-"`
	Stderr io.Writer `yaml:"-" toml:"-"`
}

// Default returns the configuration of the process-wide default logger.
func Default() Config {
	return Config{
		Level:            core.DefaultLevel.String(),
		BufferSize:       core.DefaultBufferSize,
		ConstrainedStack: core.ConstrainedStack,
		Timestamps:       true,
		Output:           OutputConsole,
	}
}

// DetectFormat determines the configuration format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

// Load reads a YAML or TOML file over Default(). Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(content, format)
}

// Parse decodes content in the given format over Default().
func Parse(content []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return cfg, nil
}

// Validate reports every problem in c at once.
func (c Config) Validate() error {
	var err error
	if _, perr := core.ParseLevel(c.Level); perr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: level: %w", ErrInvalidConfig, perr))
	}
	if c.BufferSize < formatter.MinBufferSize {
		err = multierr.Append(err, fmt.Errorf("%w: buffer_size %d is below %d",
			ErrInvalidConfig, c.BufferSize, formatter.MinBufferSize))
	}
	switch c.Output {
	case OutputConsole, OutputZap, OutputSlog, OutputDiscard:
	case OutputCapture:
		if c.CaptureFile == "" {
			err = multierr.Append(err, fmt.Errorf("%w: capture output needs capture_file", ErrInvalidConfig))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("%w: unknown output %q", ErrInvalidConfig, c.Output))
	}
	return err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// Build validates c and creates the logger it describes. The returned
// closer releases the output and must be called once the logger is no
// longer used.
func (c Config) Build() (*logger.Logger, io.Closer, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	level, _ := core.ParseLevel(c.Level)

	h, closer, err := c.buildHandler()
	if err != nil {
		return nil, nil, err
	}

	l := logger.NewBuilder().
		WithLevel(level).
		WithBufferSize(c.BufferSize).
		WithConstrainedStack(c.ConstrainedStack).
		WithHandler(h).
		Build()
	return l, closer, nil
}

func (c Config) clock() core.Clock {
	if c.CoarseClock {
		return core.CoarseClock()
	}
	return core.SystemClock
}

func (c Config) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

func (c Config) stderr() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return os.Stderr
}

func (c Config) buildHandler() (handler.Handler, io.Closer, error) {
	switch c.Output {
	case OutputCapture:
		fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
			Filename: c.CaptureFile,
			Clock:    c.clock(),
		})
		if err != nil {
			return nil, nil, err
		}
		return fh, fh, nil

	case OutputZap:
		zc := zap.NewDevelopmentEncoderConfig()
		zc.TimeKey = ""
		if c.Timestamps {
			zc.TimeKey = "T"
		}
		z := zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zc),
			zapcore.AddSync(c.stderr()),
			zapcore.DebugLevel,
		))
		return zaphandler.New(z), closerFunc(func() error {
			// Sync fails on terminals; nothing is buffered otherwise.
			_ = z.Sync()
			return nil
		}), nil

	case OutputSlog:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		if !c.Timestamps {
			opts.ReplaceAttr = dropTime
		}
		return sloghandler.New(slog.New(slog.NewTextHandler(c.stderr(), opts))), nopCloser, nil

	case OutputDiscard:
		return handler.Discard, nopCloser, nil

	default:
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Stdout:           c.stdout(),
			Stderr:           c.stderr(),
			Clock:            c.clock(),
			DisableTimestamp: !c.Timestamps,
		}), nopCloser, nil
	}
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return a
}
