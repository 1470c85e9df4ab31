package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalogo/katalogo-cli/pkg/search"
)

// renderDropdown renders the ranked suggestion list under the search
// bar. The matched part of each title is emphasized; on the catalog
// scope the product's category is shown as secondary text.
func renderDropdown(results []search.Match, focused int, query string, showCategory bool, width int) string {
	if len(results) == 0 {
		return ""
	}

	var rows []string
	for i, m := range results {
		title := highlightTitle(m.Product.Title, query)

		marker := "  "
		if i == focused {
			marker = "▸ "
		}

		line := marker + title
		if showCategory && m.Product.Category != "" {
			line += CategoryStyle.Render(" · " + m.Product.Category)
		}
		rows = append(rows, line)
	}

	return DropdownStyle.Width(width - 6).Render(strings.Join(rows, "\n"))
}

// highlightTitle emphasizes the first diacritic-insensitive occurrence
// of query within title, keeping the original spelling.
func highlightTitle(title, query string) string {
	start, end, ok := search.HighlightSpan(title, query)
	if !ok {
		return title
	}
	return title[:start] + HighlightStyle.Render(title[start:end]) + title[end:]
}

// renderChips renders the label filter row. Index 0 is the localized
// "show everything" chip, active when no label filter is set.
func renderChips(allLabels, active []string, cursor int, focused bool) string {
	activeSet := make(map[string]bool, len(active))
	for _, l := range active {
		activeSet[l] = true
	}

	chip := func(idx int, label string, isActive bool) string {
		style := ChipStyle
		if isActive {
			style = ChipActiveStyle
		}
		rendered := style.Render(label)
		if focused && idx == cursor {
			rendered = ChipCursorStyle.Render(rendered)
		}
		return rendered
	}

	parts := []string{chip(0, chipAllLabel, len(active) == 0)}
	for i, l := range allLabels {
		parts = append(parts, chip(i+1, l, activeSet[l]))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
