package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/szabadkai/quarterback/internal/capacity"
	"github.com/szabadkai/quarterback/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UtilizationColor returns the style for a utilization status band.
func UtilizationColor(status capacity.UtilizationStatus) lipgloss.Style {
	switch status {
	case capacity.StatusOver:
		return StyleRed
	case capacity.StatusAtCapacity, capacity.StatusHigh:
		return StyleYellow
	case capacity.StatusGood:
		return StyleGreen
	case capacity.StatusLow:
		return StyleBlue
	default:
		return StyleDim
	}
}

// UtilizationIndicator renders a colored dot plus the status label,
// such as "● OVER".
func UtilizationIndicator(status capacity.UtilizationStatus) string {
	label := strings.ToUpper(string(status))
	if status == capacity.StatusNone {
		return StyleDim.Render("● N/A")
	}
	return UtilizationColor(status).Render("● " + label)
}

// StatusPill renders a project status in its signature color.
func StatusPill(status domain.ProjectStatus) string {
	label := strings.ReplaceAll(string(status), "_", " ")
	switch status {
	case domain.ProjectInProgress:
		return StyleYellow.Render(label)
	case domain.ProjectCompleted:
		return StyleGreen.Render(label)
	case domain.ProjectAtRisk:
		return StyleRed.Render(label)
	case domain.ProjectBlocked:
		return StylePurple.Render(label)
	default:
		return StyleBlue.Render(label)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
