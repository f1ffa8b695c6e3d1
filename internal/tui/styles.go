package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary = lipgloss.Color("#6C63FF")
	colorMuted   = lipgloss.Color("#666666")
	colorClean   = lipgloss.Color("#2ECC71")
	colorSlip    = lipgloss.Color("#F39C12")
	colorRelapse = lipgloss.Color("#E74C3C")
	colorFg      = lipgloss.Color("#C0CAF5")
	colorSubtle  = lipgloss.Color("#414868")
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Streak counter on the home view
	streakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Align(lipgloss.Center)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	cleanStyle = lipgloss.NewStyle().
			Foreground(colorClean)

	slipStyle = lipgloss.NewStyle().
			Foreground(colorSlip)

	relapseStyle = lipgloss.NewStyle().
			Foreground(colorRelapse)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRelapse)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	// Calendar day cells
	dayCellStyle = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center)

	dayCleanStyle = dayCellStyle.
			Foreground(colorClean).
			Bold(true)

	daySlipStyle = dayCellStyle.
			Foreground(colorSlip).
			Bold(true)

	dayRelapseStyle = dayCellStyle.
			Foreground(colorRelapse).
			Bold(true)

	dayCursorStyle = dayCellStyle.
			Background(colorSubtle).
			Bold(true)
)

func statusStyle(status string) lipgloss.Style {
	switch status {
	case "slip":
		return slipStyle
	case "relapse":
		return relapseStyle
	default:
		return cleanStyle
	}
}
