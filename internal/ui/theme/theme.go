// Package theme holds the colors and shared styles of the terminal UI.
package theme

import "github.com/charmbracelet/lipgloss"

var (
	Blue  = lipgloss.Color("#0A66C2")
	Pink  = lipgloss.Color("#FF4F8B")
	White = lipgloss.Color("#FFFFFF")
	Gray  = lipgloss.Color("#828282")
	Red   = lipgloss.Color("#FF0000")

	TitleStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(Gray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	FocusedStyle = lipgloss.NewStyle().
			Foreground(Blue)

	ButtonStyle = lipgloss.NewStyle().
			Background(Blue).
			Foreground(White).
			Bold(true).
			Padding(0, 2)

	ButtonPulseStyle = ButtonStyle.
				Background(Pink)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#555555")).
				Foreground(lipgloss.Color("#AAAAAA")).
				Padding(0, 2)

	HeartStyle = lipgloss.NewStyle().
			Foreground(Pink).
			Bold(true)

	OutputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Padding(0, 1)

	AlertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Red).
			Foreground(White).
			Padding(1, 3)

	ActiveTabStyle = lipgloss.NewStyle().
			Background(Blue).
			Foreground(White).
			Bold(true).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#555555")).
				Foreground(lipgloss.Color("#CCCCCC")).
				Padding(0, 1)
)
