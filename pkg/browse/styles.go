package browse

import "github.com/charmbracelet/lipgloss"

// Color palette for the memory browser. Single source of truth so the list,
// detail view, and status line stay visually consistent.
var (
	skyBlue     = lipgloss.Color("#7AA2F7") // primary accent
	softGreen   = lipgloss.Color("#9ECE6A") // success / copied toast
	mutedGray   = lipgloss.Color("#565F89") // secondary text
	brightWhite = lipgloss.Color("#C0CAF5") // primary text
	warmRed     = lipgloss.Color("#F7768E") // errors
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(skyBlue).
			Bold(true)

	detailHeaderStyle = lipgloss.NewStyle().
				Foreground(skyBlue).
				Bold(true).
				Padding(0, 1)

	detailMetaStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	detailBodyStyle = lipgloss.NewStyle().
			Foreground(brightWhite).
			Padding(1, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	toastStyle = lipgloss.NewStyle().
			Foreground(softGreen).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(warmRed).
			Padding(0, 1)
)
