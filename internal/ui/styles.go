package ui

import "github.com/charmbracelet/lipgloss"

// Palette and pill styling follow the original web rendition: indigo
// accents, green "Lido" badge, gray "Não lido".
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4F46E5")).
			Bold(true)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4F46E5")).
			Background(lipgloss.Color("#EEF2FF")).
			Bold(true).
			Padding(0, 1)

	ConceptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#111827")).
			Bold(true)

	RecordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c9d1d9"))

	ReadRecordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#484f58"))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#1f3a5f")).
			Bold(true)

	PillReadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	PillUnreadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	DescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8b949e"))

	LinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#58a6ff")).
			Underline(true)

	LoadMoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d29922"))

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6e7681")).
			Italic(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8b949e"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#f85149")).
			Padding(0, 1)
)

// Pill renders the read badge for a record.
func Pill(read bool) string {
	if read {
		return PillReadStyle.Render("Lido")
	}
	return PillUnreadStyle.Render("Não lido")
}
