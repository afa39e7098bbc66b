package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var ErrBadLevel = errors.New("invalid log level")

// ParseLevel converts level name to zerolog level.
// Accepts aliases: "verbose"/"verb" for trace, "notice" for info, "warning" for warn, "quiet"/"silent" to disable.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "verbose", "verb", "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "notice", "info":
		return zerolog.InfoLevel, nil
	case "warning", "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "quiet", "silent":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrBadLevel, s)
	}
}

// New makes logger of given level writing to w (os.Stderr if nil).
// If json is false human-readable console writer will use.
func New(level string, json bool, w io.Writer) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if w == nil {
		w = os.Stderr
	}
	if !json {
		w = NewConsoleWriter(w, !isTerminal(w))
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// isTerminal checks if w is an interactive terminal, colors make sense only there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
