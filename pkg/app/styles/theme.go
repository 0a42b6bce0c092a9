package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#5B9BD5")
	Secondary  = lipgloss.Color("#9CC3E5")
	Success    = lipgloss.Color("#A8D08D")
	Warning    = lipgloss.Color("#FFD966")
	Error      = lipgloss.Color("#E06666")
	Info       = lipgloss.Color("#76B7F5")
	Muted      = lipgloss.Color("#7F8C99")
	Foreground = lipgloss.Color("#ECF2F8")

	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(1, 2).
			MarginBottom(1)

	ActiveCardStyle = lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(Primary).
			Padding(1, 2).
			MarginBottom(1)

	StatusReading = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	StatusRead = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusFavorite = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	RatingStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(lipgloss.Color("#2B3A4A")).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)
)

// StatusStyle picks the style for a book status badge.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "reading":
		return StatusReading
	case "read":
		return StatusRead
	case "favorite":
		return StatusFavorite
	case "want-to-read":
		return MutedStyle
	default:
		return MutedStyle
	}
}
