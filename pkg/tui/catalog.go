package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalogo/katalogo-cli/pkg/catalog"
	"github.com/katalogo/katalogo-cli/pkg/files"
	"github.com/katalogo/katalogo-cli/pkg/labels"
	"github.com/katalogo/katalogo-cli/pkg/models"
)

type focusArea int

const (
	focusSearch focusArea = iota
	focusChips
	focusResults
)

// CatalogModel is the whole-catalog page: search across every product,
// label filter chips and the product grid. Records arrive
// asynchronously via the index load.
type CatalogModel struct {
	settings *models.Settings

	searchBar  *SearchBar
	controller *catalog.Controller
	coord      *catalog.Coordinator
	filters    *labels.Engine

	allLabels []string
	loaded    bool
	loadErr   error

	focus        focusArea
	chipCursor   int
	resultCursor int
	gridView     bool

	width  int
	height int
}

// NewCatalogModel creates the catalog page. The search input starts
// focused; suggestions stay unavailable until the index load resolves.
func NewCatalogModel(settings *models.Settings) *CatalogModel {
	filters := labels.NewEngine()
	controller := catalog.NewController(settings.Search.MaxResults, settings.Search.MinChars)
	coord := catalog.NewCoordinator(catalog.ScopeCatalog, nil, filters, controller)

	m := &CatalogModel{
		settings:   settings,
		searchBar:  NewSearchBar("Hledat produkt..."),
		controller: controller,
		coord:      coord,
		filters:    filters,
		focus:      focusSearch,
		gridView:   settings.UI.ProductView != "list",
	}
	m.searchBar.SetActive(true)
	return m
}

func (m *CatalogModel) Init() tea.Cmd {
	return loadIndexCmd(m.settings.Search.IndexPath)
}

// loadIndexCmd reads the index artifact off the UI loop.
func loadIndexCmd(path string) tea.Cmd {
	return func() tea.Msg {
		products, err := files.ReadIndex(path)
		if err != nil {
			return indexLoadFailedMsg{err: err}
		}
		return indexLoadedMsg{products: products}
	}
}

// SetSize updates the layout dimensions.
func (m *CatalogModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchBar.SetWidth(width)
}

func (m *CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case indexLoadedMsg:
		m.loaded = true
		m.coord.SetRecords(msg.products)
		m.allLabels = distinctLabels(msg.products)
		return m, nil

	case indexLoadFailedMsg:
		m.loadErr = msg.err
		m.controller.Disable(msgSearchUnavailable)
		m.searchBar.Disable(msgSearchUnavailable)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *CatalogModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

func (m *CatalogModel) cycleFocus() {
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

func (m *CatalogModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
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
				return m, openProductCmd(p, catalogView)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchBar, cmd = m.searchBar.Update(msg)
	m.controller.Input(m.searchBar.Value())
	return m, cmd
}

func (m *CatalogModel) handleChipKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		// Label interaction may have cancelled a search; mirror the
		// controller's cleared query into the widget.
		m.searchBar.SetValue(m.controller.Query())
		m.resultCursor = 0
	}
	return m, nil
}

func (m *CatalogModel) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
			return m, openProductCmd(p, catalogView)
		}
	case "c":
		if p := m.focusedRecord(visible); p != nil {
			if err := clipboard.WriteAll(p.URL); err != nil {
				return m, statusCmd(fmt.Sprintf("Copy failed: %v", err))
			}
			return m, statusCmd("URL copied: " + p.URL)
		}
	case "o":
		if p := m.focusedRecord(visible); p != nil && p.Category != "" {
			records := files.FilterByCategory(m.coord.Records(), p.Category)
			return m, openCategoryCmd(p.Category, records)
		}
	}
	return m, nil
}

func (m *CatalogModel) focusedSuggestion() *models.Product {
	results := m.controller.Results()
	i := m.controller.FocusedIndex()
	if i < 0 || i >= len(results) {
		return nil
	}
	p := results[i].Product
	return &p
}

func (m *CatalogModel) focusedRecord(visible []int) *models.Product {
	if m.resultCursor < 0 || m.resultCursor >= len(visible) {
		return nil
	}
	p := m.coord.Records()[visible[m.resultCursor]]
	return &p
}

func (m *CatalogModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("KATALOG"))
	b.WriteString("\n\n")
	b.WriteString(m.searchBar.View())
	b.WriteString("\n")

	if m.loadErr != nil {
		b.WriteString(DisabledStyle.Render(" " + msgSearchUnavailable))
		b.WriteString("\n")
	} else if m.controller.Open() {
		b.WriteString(renderDropdown(m.controller.Results(), m.controller.FocusedIndex(), m.controller.Query(), true, m.width))
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
	b.WriteString(HelpStyle.Render(" tab: přepnout • enter: otevřít • c: kopírovat URL • o: kategorie • g: zobrazení • ctrl+c: konec"))

	return b.String()
}

func (m *CatalogModel) counterLine() string {
	switch m.coord.Mode() {
	case catalog.ModeCommittedSearch:
		heading := fmt.Sprintf(fmtSearchHeading, m.coord.CommittedQuery())
		return heading + " · " + fmt.Sprintf(fmtFoundProducts, m.coord.VisibleCount())
	case catalog.ModeLabelFiltered:
		return fmt.Sprintf(fmtShownOfTotal, m.coord.VisibleCount(), m.coord.Total())
	default:
		return fmt.Sprintf(fmtShownTotal, m.coord.Total())
	}
}

func (m *CatalogModel) renderProducts() string {
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
			if p.Category != "" {
				line += CategoryStyle.Render(" · " + p.Category)
			}
			if m.focus == focusResults && i == m.resultCursor {
				line = "▸" + line[1:]
			}
			rows = append(rows, line)
		}
		return strings.Join(rows, "\n")
	}

	return renderGrid(records, visible, m.resultCursor, m.focus == focusResults, m.width)
}

// renderGrid lays product cards out in rows sized to the terminal
// width.
func renderGrid(records []models.Product, visible []int, cursor int, focused bool, width int) string {
	const cardWidth = 28
	cols := width / (cardWidth + 2)
	if cols < 1 {
		cols = 1
	}

	var rows []string
	var row []string
	for i, idx := range visible {
		p := records[idx]
		style := CardStyle
		if focused && i == cursor {
			style = CardFocusedStyle
		}
		content := p.Title
		if p.Category != "" {
			content += "\n" + CategoryStyle.Render(p.Category)
		}
		if len(p.Labels) > 0 {
			content += "\n" + ChipStyle.Render(strings.Join(p.Labels, " "))
		}
		row = append(row, style.Width(cardWidth).Render(content))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// distinctLabels collects every label of the record set in first-seen
// order.
func distinctLabels(products []models.Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		for _, l := range p.Labels {
			if !seen[l] {
				seen[l] = true
				out = append(out, l)
			}
		}
	}
	return out
}

func openProductCmd(p *models.Product, returnTo sessionState) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{view: productViewerView, product: p, returnTo: returnTo}
	}
}

func openCategoryCmd(category string, records []models.Product) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{view: categoryView, category: category, records: records}
	}
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(msg)
	}
}
