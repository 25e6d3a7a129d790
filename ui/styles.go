package ui

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette
var (
	DraculaForeground = lipgloss.AdaptiveColor{Light: "255", Dark: "255"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	DraculaOrange     = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}

	// List styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)

	// Checkout panel styles
	PanelFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaPink).
			Padding(1, 2)
	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true)
	PanelLabelStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	PanelTotalStyle = lipgloss.NewStyle().
			Foreground(DraculaGreen).
			Bold(true)

	// Inline validation warning
	WarningStyle = lipgloss.NewStyle().
			Foreground(DraculaOrange)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(DraculaRed)
	SuccessStyle = lipgloss.NewStyle().
			Foreground(DraculaGreen).
			Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)

	// Filter bar
	FilterLabelStyle = lipgloss.NewStyle().
				Foreground(DraculaComment)
	FilterFocusStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	FilterValueStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan)

	// Toasts
	toastStyles = map[string]lipgloss.Style{
		"info":    lipgloss.NewStyle().Foreground(DraculaCyan),
		"success": lipgloss.NewStyle().Foreground(DraculaGreen).Bold(true),
		"warning": lipgloss.NewStyle().Foreground(DraculaOrange),
		"error":   lipgloss.NewStyle().Foreground(DraculaRed).Bold(true),
	}
)
