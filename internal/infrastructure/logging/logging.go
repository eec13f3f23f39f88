package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/muesli/termenv"
)

// New creates the console logger used for all diagnostics. Timestamps are
// dropped since every line belongs to a single interactive run.
func New(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: noColor || !ColorSupported(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// ColorSupported reports whether w is a terminal that accepts colour,
// honouring NO_COLOR and CLICOLOR_FORCE.
func ColorSupported(w io.Writer) bool {
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(tint.NewHandler(io.Discard, nil))
}
