package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchBar is the shared search input component of both scopes.
type SearchBar struct {
	input    textinput.Model
	isActive bool
	disabled bool
	width    int
}

// NewSearchBar creates a new search bar component
func NewSearchBar(placeholder string) *SearchBar {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	ti.Width = 50 // Default width, adjusted on resize

	return &SearchBar{
		input: ti,
	}
}

// SetActive sets whether the search bar is the active pane
func (s *SearchBar) SetActive(active bool) {
	s.isActive = active && !s.disabled
	if s.isActive {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// Disable permanently disables the input and shows the given
// placeholder instead. There is no way back for the page's lifetime.
func (s *SearchBar) Disable(placeholder string) {
	s.disabled = true
	s.input.SetValue("")
	s.input.Placeholder = placeholder
	s.input.Blur()
}

// Disabled reports whether the input is disabled.
func (s *SearchBar) Disabled() bool {
	return s.disabled
}

// SetWidth sets the width for the search bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// Account for icon, padding and borders
	s.input.Width = width - 12
}

// Value returns the current search text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue sets the search text
func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
}

// Update handles tea messages for the search bar
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	if s.disabled {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search bar with consistent styling
func (s *SearchBar) View() string {
	borderColor := ColorFaint
	if s.isActive {
		borderColor = ColorFocus
	}

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(s.width - 4).
		Padding(0, 1)

	var searchIcon string
	if s.isActive {
		searchIcon = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorFocus)).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	} else {
		searchIcon = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true).
			Render(" ⌕ ")
	}

	searchContent := lipgloss.JoinHorizontal(lipgloss.Center, searchIcon, " ", s.input.View())

	return lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Render(searchStyle.Render(searchContent))
}

// Focus focuses the search input
func (s *SearchBar) Focus() tea.Cmd {
	if s.disabled {
		return nil
	}
	return s.input.Focus()
}

// Blur removes focus from the search input
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Reset clears the search input
func (s *SearchBar) Reset() {
	s.input.SetValue("")
}
