package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for log prefixes and probe reports
type ColorScheme struct {
	Prefix  *color.Color
	Label   *color.Color
	Success *color.Color
	Error   *color.Color
	Muted   *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Prefix:  color.New(color.FgCyan, color.Bold),
		Label:   color.New(color.FgBlue, color.Bold),
		Success: color.New(color.FgGreen),
		Error:   color.New(color.FgRed, color.Bold),
		Muted:   color.New(color.FgHiBlack),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Prefix.DisableColor()
	scheme.Label.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()
	scheme.Muted.DisableColor()

	return scheme
}

// SchemeFor picks the scheme for noColor
func SchemeFor(noColor bool) *ColorScheme {
	if noColor {
		return NoColorScheme()
	}
	scheme := DefaultColorScheme()
	// fatih/color only auto-disables for os.Stdout; force colors for other
	// writers the caller has decided are terminals.
	scheme.Prefix.EnableColor()
	scheme.Label.EnableColor()
	scheme.Success.EnableColor()
	scheme.Error.EnableColor()
	scheme.Muted.EnableColor()
	return scheme
}

// SuccessIcon returns a checkmark symbol with appropriate color
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}
