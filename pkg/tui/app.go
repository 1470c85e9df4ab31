package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalogo/katalogo-cli/pkg/models"
)

type sessionState int

const (
	catalogView sessionState = iota
	categoryView
	productViewerView
)

// App routes messages between the catalog view, the per-category view
// and the product viewer.
type App struct {
	state     sessionState
	settings  *models.Settings
	catalog   *CatalogModel
	category  *CategoryModel
	viewer    *ProductViewerModel
	width     int
	height    int
	statusMsg string
}

func NewApp(settings *models.Settings) *App {
	return &App{
		state:    catalogView,
		settings: settings,
		catalog:  NewCatalogModel(settings),
	}
}

func (a *App) Init() tea.Cmd {
	return a.catalog.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.catalog != nil {
			a.catalog.SetSize(msg.Width, msg.Height)
		}
		if a.category != nil {
			a.category.SetSize(msg.Width, msg.Height)
		}
		if a.viewer != nil {
			a.viewer.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		a.statusMsg = ""
		switch msg.view {
		case catalogView:
			a.state = catalogView
			return a, nil
		case categoryView:
			a.state = categoryView
			a.category = NewCategoryModel(a.settings, msg.category, msg.records)
			a.category.SetSize(a.width, a.height)
			return a, a.category.Init()
		case productViewerView:
			a.state = productViewerView
			if a.viewer == nil {
				a.viewer = NewProductViewerModel()
			}
			a.viewer.SetSize(a.width, a.height)
			a.viewer.SetProduct(msg.product, msg.returnTo)
			return a, a.viewer.Init()
		}
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case catalogView:
		var m tea.Model
		m, cmd = a.catalog.Update(msg)
		if cm, ok := m.(*CatalogModel); ok {
			a.catalog = cm
		}
	case categoryView:
		var m tea.Model
		m, cmd = a.category.Update(msg)
		if cm, ok := m.(*CategoryModel); ok {
			a.category = cm
		}
	case productViewerView:
		var m tea.Model
		m, cmd = a.viewer.Update(msg)
		if pv, ok := m.(*ProductViewerModel); ok {
			a.viewer = pv
		}
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case catalogView:
		content = a.catalog.View()
	case categoryView:
		content = a.category.View()
	case productViewerView:
		content = a.viewer.View()
	default:
		content = "Unknown view"
	}

	if a.statusMsg != "" {
		statusBar := StatusStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// Messages for communication between views

type StatusMsg string

type SwitchViewMsg struct {
	view     sessionState
	product  *models.Product
	category string
	records  []models.Product
	returnTo sessionState
}

type indexLoadedMsg struct {
	products []models.Product
}

type indexLoadFailedMsg struct {
	err error
}
