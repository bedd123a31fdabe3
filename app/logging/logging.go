// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/lysyi3m/lead-comb/app/cfg"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs a text logger on stderr, mirrored to a rotated file when one
// is configured. The returned closer releases the file.
func Setup(c *cfg.Cfg) io.Closer {
	return setup(c, os.Stderr)
}

func setup(c *cfg.Cfg, stderr io.Writer) io.Closer {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}

	var out io.Writer = stderr
	var closer io.Closer = nopCloser{}

	if c.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    c.LogMaxSize,
			MaxBackups: c.LogMaxBackups,
			MaxAge:     c.LogMaxAge,
		}
		out = io.MultiWriter(stderr, file)
		closer = file
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))

	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
