package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/secmon-lab/memora/pkg/utils/logging"
	"github.com/secmon-lab/memora/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// Logger holds CLI flags for log output
type Logger struct {
	level  string
	format string
	output string
}

// Flags returns CLI flags for logger configuration
func (x *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "warn",
			Sources:     cli.EnvVars("MEMORA_LOG_LEVEL"),
			Destination: &x.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json)",
			Category:    "Logging",
			Value:       "console",
			Sources:     cli.EnvVars("MEMORA_LOG_FORMAT"),
			Destination: &x.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log destination (stderr, stdout, or a file path)",
			Category:    "Logging",
			Value:       "stderr",
			Sources:     cli.EnvVars("MEMORA_LOG_OUTPUT"),
			Destination: &x.output,
		},
	}
}

func (x Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
	)
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, goerr.Wrap(ErrInvalidLogLevel, "unknown log level", goerr.V(LogLevelKey, s))
	}
}

// redactor hides API keys and fields tagged `masq:"secret"` in both log
// formats.
func redactor() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithFieldName("APIKey"),
	)
}

// Configure builds the logger and installs it as the default. The returned
// function releases the log file, if one was opened.
func (x *Logger) Configure() (func(), error) {
	level, err := parseLogLevel(x.level)
	if err != nil {
		return nil, err
	}

	var w io.Writer
	closer := func() {}
	colored := false
	switch x.output {
	case "", "stderr":
		w, colored = os.Stderr, true
	case "stdout":
		w, colored = os.Stdout, true
	default:
		// #nosec G304 - path is expected to be provided by CLI argument
		f, err := os.OpenFile(x.output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", x.output))
		}
		w = f
		closer = func() { safe.Close(context.Background(), f) }
	}

	handler, err := newLogHandler(x.format, w, level, colored)
	if err != nil {
		closer()
		return nil, err
	}

	logging.SetDefault(slog.New(handler))
	return closer, nil
}

func newLogHandler(format string, w io.Writer, level slog.Level, colored bool) (slog.Handler, error) {
	switch format {
	case "", "console":
		return clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithColor(colored),
			clog.WithReplaceAttr(redactor()),
		), nil

	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: redactor(),
		}), nil

	default:
		return nil, goerr.Wrap(ErrInvalidFormat, "unknown log format", goerr.V(FormatKey, format))
	}
}
