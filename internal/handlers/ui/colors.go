package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc()
)

// Report Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	LabelColor  = color.New(color.FgBlue, color.Bold).SprintFunc()
	ValueColor  = color.New(color.FgWhite).SprintFunc()
)

// Fit colors a correlation by how well the run follows the expected curve.
func Fit(correlation float64, text string) string {
	switch {
	case correlation >= 0.99:
		return SuccessColor(text)
	case correlation >= 0.9:
		return WarningColor(text)
	default:
		return ErrorColor(text)
	}
}
