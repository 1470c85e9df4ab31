package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/katalogo/katalogo-cli/pkg/models"
)

// ProductViewerModel shows a single product's detail page, the
// in-process stand-in for following a suggestion's URL.
type ProductViewerModel struct {
	product  *models.Product
	returnTo sessionState
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func NewProductViewerModel() *ProductViewerModel {
	return &ProductViewerModel{
		returnTo: catalogView,
	}
}

func (m *ProductViewerModel) Init() tea.Cmd {
	return nil
}

// SetProduct installs the product to display and where esc returns.
func (m *ProductViewerModel) SetProduct(p *models.Product, returnTo sessionState) {
	m.product = p
	m.returnTo = returnTo
	if m.ready {
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()
	}
}

// SetSize updates the layout dimensions.
func (m *ProductViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	headerHeight := 6
	footerHeight := 2
	vpHeight := height - headerHeight - footerHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(width-4, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width - 4
		m.viewport.Height = vpHeight
	}
	if m.product != nil {
		m.viewport.SetContent(m.renderContent())
	}
}

func (m *ProductViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg {
				return SwitchViewMsg{view: m.returnTo}
			}
		case "c":
			if m.product != nil {
				if err := clipboard.WriteAll(m.product.URL); err != nil {
					return m, statusCmd(fmt.Sprintf("Copy failed: %v", err))
				}
				return m, statusCmd("URL copied: " + m.product.URL)
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ProductViewerModel) View() string {
	if m.product == nil {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.product.Title))
	b.WriteString("\n\n")
	if m.product.Category != "" {
		b.WriteString(" " + CategoryStyle.Render("Kategorie: "+m.product.Category))
		b.WriteString("\n")
	}
	if len(m.product.Labels) > 0 {
		b.WriteString(" " + ChipStyle.Render(strings.Join(m.product.Labels, " ")))
		b.WriteString("\n")
	}
	b.WriteString(" " + CategoryStyle.Render(m.product.URL))
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(" ↑/↓: posun • c: kopírovat URL • esc: zpět"))
	return b.String()
}

func (m *ProductViewerModel) renderContent() string {
	if m.product == nil {
		return ""
	}
	desc := m.product.Description
	if desc == "" {
		desc = "Bez popisu."
	}
	width := m.viewport.Width
	if width <= 0 {
		width = 76
	}
	return wordwrap.String(desc, width)
}
