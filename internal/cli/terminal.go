package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewLogger builds the host logger from cfg, writing to w.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, level, format), nil
}

// NewRenderer picks glamour for terminals and plain markdown otherwise.
func NewRenderer(cfg Config, out *os.File) (tui.Render, error) {
	if cfg.Style == "" && !IsTerminal(out) {
		return tui.Plain, nil
	}
	return tui.NewRenderer(cfg.Style)
}
