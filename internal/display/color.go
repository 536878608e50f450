package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode selects when ANSI colors are written.
type ColorMode string

const (
	// ColorAuto colors output only when it goes to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables colors.
	ColorNever ColorMode = "never"
)

// ParseColorMode parses auto, always or never (case-insensitive).
// An empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q, must be one of: auto, always, never", s)
	}
}

// Enabled reports whether output written to w should be colored.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
