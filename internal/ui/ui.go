// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc() // Dimmed text (more readable than gray)
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// SetColor enables or disables colored output globally.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// unitColor picks a color by unit so GB stands out from KB.
func unitColor(unit string) func(a ...interface{}) string {
	switch unit {
	case "GB":
		return Red
	case "MB":
		return Yellow
	default:
		return Green
	}
}

// FormatSize colors a rendered size by its unit.
func FormatSize(size, unit string) string {
	return unitColor(unit)(size)
}

// SizeRow is one line of a size listing.
type SizeRow struct {
	Label string // Path or raw input
	Size  string // Rendered size, e.g. "1.00 MB"
	Unit  string // Unit name, used for coloring
	Files int    // Number of files, zero to omit
	Dir   bool
}

// PrintSizeList prints sizes right-aligned followed by their labels.
func PrintSizeList(rows []SizeRow) {
	if len(rows) == 0 {
		fmt.Fprintln(Output, "Nothing to measure.")
		return
	}

	width := 0
	for _, r := range rows {
		if len(r.Size) > width {
			width = len(r.Size)
		}
	}

	for _, r := range rows {
		padded := fmt.Sprintf("%*s", width, r.Size)
		label := r.Label
		if r.Dir {
			label = Blue(label + "/")
		}
		line := fmt.Sprintf("%s  %s", FormatSize(padded, r.Unit), label)
		if r.Files > 1 {
			line += " " + Dim(fmt.Sprintf("(%d files)", r.Files))
		}
		fmt.Fprintln(Output, line)
	}
}

// PrintTotal prints the sum line of a listing.
func PrintTotal(size, unit string) {
	fmt.Fprintf(Output, "%s %s\n", Bold("Total:"), FormatSize(size, unit))
}

// ConfigDetails contains the effective configuration for display.
type ConfigDetails struct {
	Path    string
	Exists  bool
	Format  string
	Color   bool
	LogPath string
}

// PrintConfig prints configuration details in a formatted style.
func PrintConfig(c ConfigDetails) {
	source := c.Path
	if !c.Exists {
		source += " " + Dim("(not found, using defaults)")
	}
	fmt.Fprintf(Output, "%s %s\n", Bold("Config:"), source)
	fmt.Fprintf(Output, "%s %s\n", Bold("Format:"), Cyan(c.Format))
	fmt.Fprintf(Output, "%s %t\n", Bold("Color:"), c.Color)
	fmt.Fprintf(Output, "%s %s\n", Bold("Logs:"), c.LogPath)
}

// PrintSuccess prints a success message with green checkmark.
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), message)
}

// PrintError prints an error message with red X.
func PrintError(message string) {
	fmt.Fprintf(Output, "%s %s\n", Red("✗"), message)
}

// PrintWarning prints a warning message with yellow exclamation.
func PrintWarning(message string) {
	fmt.Fprintf(Output, "%s %s\n", Yellow("⚠"), message)
}

// PrintInfo prints an info message with blue dot.
func PrintInfo(message string) {
	fmt.Fprintf(Output, "%s %s\n", Blue("•"), message)
}
