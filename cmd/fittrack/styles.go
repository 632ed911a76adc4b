package fittrack

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPurple = lipgloss.Color("#7D56F4")
	colorGreen  = lipgloss.Color("#25A065")
	colorYellow = lipgloss.Color("#E5C07B")
	colorRed    = lipgloss.Color("#E05252")
	colorGray   = lipgloss.Color("#626262")
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPurple)
	doneStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	pendingStyle = lipgloss.NewStyle().Foreground(colorYellow)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorGray)
)

const barWidth = 24

var bar = progress.New(
	progress.WithSolidFill(string(colorGreen)),
	progress.WithWidth(barWidth),
	progress.WithoutPercentage(),
)

// progressLine renders "label [bar] pct% (actual/target)" for one metric.
func progressLine(label string, percent, actual, target float64, unit string) string {
	return fmt.Sprintf("  %-9s %s %3.0f%%  %s / %s %s",
		label, bar.ViewAs(percent/100), percent, minutesOrKcal(actual, unit), minutesOrKcal(target, unit), unit)
}

func minutesOrKcal(v float64, unit string) string {
	if unit == "min" {
		return minutes(v)
	}
	return kcal(v)
}

func statusLabel(completed, overridden bool) string {
	switch {
	case completed && overridden:
		return doneStyle.Render("completed") + mutedStyle.Render(" (manual)")
	case completed:
		return doneStyle.Render("completed")
	case overridden:
		return pendingStyle.Render("in progress") + mutedStyle.Render(" (manual)")
	default:
		return pendingStyle.Render("in progress")
	}
}
