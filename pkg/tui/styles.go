package tui

import "github.com/charmbracelet/lipgloss"

// Brand colors of the catalog site.
const (
	ColorAccent  = "#E92429" // highlight red
	ColorActive  = "#00A44F" // active chip green
	ColorFocus   = "170"     // focused pane purple
	ColorFaint   = "240"
	ColorText    = "252"
	ColorWarning = "214"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent))

	CategoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorFaint))

	CounterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)).
			Italic(true)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	NoResultsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorFaint)).
			Italic(true).
			Padding(0, 1)

	DropdownStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(ColorFaint)).
			Padding(0, 1)

	ChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	ChipActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	ChipCursorStyle = lipgloss.NewStyle().
			Underline(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorFaint)).
			Padding(0, 1)

	CardFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorFocus)).
				Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorFaint))

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
)

// Localized strings shown by both scopes.
const (
	msgSearchUnavailable = "Vyhledávání není k dispozici"
	msgNoResults         = "Žádné výsledky"
	chipAllLabel         = "Vše"

	fmtFoundProducts   = "Nalezeno %d produktů"
	fmtFilterResults   = "%d výsledků"
	fmtCategoryTotal   = "V kategorii se nachází %d položek"
	fmtShownOfTotal    = "Zobrazeno %d z %d položek"
	fmtShownTotal      = "Zobrazeno %d položek"
	fmtSearchHeading   = "Výsledky hledání: „%s“"
)
