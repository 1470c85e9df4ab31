package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalogo/katalogo-cli/pkg/catalog"
	"github.com/katalogo/katalogo-cli/pkg/labels"
	"github.com/katalogo/katalogo-cli/pkg/models"
)

// CategoryModel is the single-category page. Its record snapshot is
// fixed at construction, so search is available immediately and
// suggestions never show the category line.
type CategoryModel struct {
	settings *models.Settings
	category string

	searchBar  *SearchBar
	controller *catalog.Controller
	coord      *catalog.Coordinator
	filters    *labels.Engine

	allLabels []string

	focus        focusArea
	chipCursor   int
	resultCursor int
	gridView     bool

	width  int
	height int
}

func NewCategoryModel(settings *models.Settings, category string, records []models.Product) *CategoryModel {
	filters := labels.NewEngine()
	controller := catalog.NewController(settings.Search.MaxResults, settings.Search.MinChars)
	coord := catalog.NewCoordinator(catalog.ScopeCategory, records, filters, controller)

	m := &CategoryModel{
		settings:   settings,
		category:   category,
		searchBar:  NewSearchBar("Hledat v kategorii..."),
		controller: controller,
		coord:      coord,
		filters:    filters,
		allLabels:  distinctLabels(records),
		focus:      focusSearch,
		gridView:   settings.UI.ProductView != "list",
	}
	m.searchBar.SetActive(true)
	return m
}

func (m *CategoryModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the layout dimensions.
func (m *CategoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchBar.SetWidth(width)
}

func (m *CategoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *CategoryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" {
		m.cycleFocus()
		return m, nil
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusChips:
		return m.handleChipKey(msg)
	case focusResults:
		return m.handleResultKey(msg)
	}
	return m, nil
}

func (m *CategoryModel) cycleFocus() {
	switch m.focus {
	case focusSearch:
		m.focus = focusChips
		m.searchBar.SetActive(false)
	case focusChips:
		m.focus = focusResults
		m.resultCursor = 0
	default:
		m.focus = focusSearch
		m.searchBar.SetActive(true)
	}
}

func (m *CategoryModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.searchBar.Value() == "" && !m.controller.Open() {
			return m, backToCatalogCmd()
		}
		m.controller.Escape()
		return m, nil
	case "down":
		m.controller.MoveDown()
		return m, nil
	case "up":
		m.controller.MoveUp()
		return m, nil
	case "enter":
		result := m.controller.Enter()
		if result.Action == catalog.ActionNavigate {
			if p := m.focusedSuggestion(); p != nil {
				return m, openProductCmd(p, categoryView)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchBar, cmd = m.searchBar.Update(msg)
	m.controller.Input(m.searchBar.Value())
	return m, cmd
}

func (m *CategoryModel) handleChipKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.chipCursor > 0 {
			m.chipCursor--
		}
	case "right", "l":
		if m.chipCursor < len(m.allLabels) {
			m.chipCursor++
		}
	case "enter", " ":
		if m.chipCursor == 0 {
			m.coord.ClearFilters()
		} else {
			m.coord.ToggleLabel(m.allLabels[m.chipCursor-1])
		}
		m.searchBar.SetValue(m.controller.Query())
		m.resultCursor = 0
	case "esc":
		return m, backToCatalogCmd()
	}
	return m, nil
}

func (m *CategoryModel) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.coord.VisibleIndexes()

	switch msg.String() {
	case "down", "j":
		if m.resultCursor < len(visible)-1 {
			m.resultCursor++
		}
	case "up", "k":
		if m.resultCursor > 0 {
			m.resultCursor--
		}
	case "g":
		m.gridView = !m.gridView
	case "enter":
		if p := m.focusedRecord(visible); p != nil {
			return m, openProductCmd(p, categoryView)
		}
	case "c":
		if p := m.focusedRecord(visible); p != nil {
			if err := clipboard.WriteAll(p.URL); err != nil {
				return m, statusCmd(fmt.Sprintf("Copy failed: %v", err))
			}
			return m, statusCmd("URL copied: " + p.URL)
		}
	case "esc":
		return m, backToCatalogCmd()
	}
	return m, nil
}

func (m *CategoryModel) focusedSuggestion() *models.Product {
	results := m.controller.Results()
	i := m.controller.FocusedIndex()
	if i < 0 || i >= len(results) {
		return nil
	}
	p := results[i].Product
	return &p
}

func (m *CategoryModel) focusedRecord(visible []int) *models.Product {
	if m.resultCursor < 0 || m.resultCursor >= len(visible) {
		return nil
	}
	p := m.coord.Records()[visible[m.resultCursor]]
	return &p
}

func (m *CategoryModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(strings.ToUpper(m.category)))
	b.WriteString("\n\n")
	b.WriteString(m.searchBar.View())
	b.WriteString("\n")

	if m.controller.Open() {
		b.WriteString(renderDropdown(m.controller.Results(), m.controller.FocusedIndex(), m.controller.Query(), false, m.width))
		b.WriteString("\n")
	} else if m.controller.NoResults() {
		b.WriteString(NoResultsStyle.Render(msgNoResults))
		b.WriteString("\n")
	}

	b.WriteString(" " + CounterStyle.Render(m.counterLine()))
	b.WriteString("\n")

	if m.coord.Mode() != catalog.ModeCommittedSearch && len(m.allLabels) > 0 {
		b.WriteString(renderChips(m.allLabels, m.coord.ActiveFilters(), m.chipCursor, m.focus == focusChips))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderProducts())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(" tab: přepnout • enter: otevřít • c: kopírovat URL • esc: zpět • ctrl+c: konec"))

	return b.String()
}

func (m *CategoryModel) counterLine() string {
	switch m.coord.Mode() {
	case catalog.ModeCommittedSearch:
		heading := fmt.Sprintf(fmtSearchHeading, m.coord.CommittedQuery())
		return heading + " · " + fmt.Sprintf(fmtFilterResults, m.coord.VisibleCount())
	case catalog.ModeLabelFiltered:
		return fmt.Sprintf(fmtShownOfTotal, m.coord.VisibleCount(), m.coord.Total())
	default:
		return fmt.Sprintf(fmtCategoryTotal, m.coord.Total())
	}
}

func (m *CategoryModel) renderProducts() string {
	visible := m.coord.VisibleIndexes()
	if len(visible) == 0 {
		return NoResultsStyle.Render(msgNoResults)
	}
	records := m.coord.Records()

	if !m.gridView {
		var rows []string
		for i, idx := range visible {
			p := records[idx]
			line := " " + p.Title
			if m.focus == focusResults && i == m.resultCursor {
				line = "▸" + line[1:]
			}
			rows = append(rows, line)
		}
		return strings.Join(rows, "\n")
	}

	return renderGrid(records, visible, m.resultCursor, m.focus == focusResults, m.width)
}

func backToCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{view: catalogView}
	}
}
