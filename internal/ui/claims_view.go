package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/mcao2/deckcheck/internal/pitchdeck"
)

// ClaimsView renders extracted claims as a fixed-layout table
type ClaimsView struct {
	claims  []pitchdeck.Claim
	width   int
	columns []table.Column

	headerStyle lipgloss.Style
	cellStyle   lipgloss.Style
}

func claimColumns(width int) []table.Column {
	// Each cell has Padding(0,1) adding 2 chars per column.
	fixedWidth := 10 + 14
	padding := 3*2 + 2
	claimWidth := width - fixedWidth - padding
	if claimWidth < 20 {
		claimWidth = 20
	}
	return []table.Column{
		{Title: "Importance", Width: 10},
		{Title: "Category", Width: 14},
		{Title: "Claim", Width: claimWidth},
	}
}

// NewClaimsView creates a view for claims sized to width
func NewClaimsView(claims []pitchdeck.Claim, width int, theme Theme) ClaimsView {
	return ClaimsView{
		claims:  claims,
		width:   width,
		columns: claimColumns(width),
		headerStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Subtle)).
			BorderBottom(true).
			Bold(true).
			Foreground(lipgloss.Color(theme.Primary)),
		cellStyle: lipgloss.NewStyle().Padding(0, 1),
	}
}

func (cv ClaimsView) rows() []table.Row {
	rows := make([]table.Row, len(cv.claims))
	for i, c := range cv.claims {
		rows[i] = table.Row{
			getImportanceText(c.Importance),
			c.Category,
			c.Claim,
		}
	}
	return rows
}

// renderCell renders a single cell value with the given column width.
func (cv ClaimsView) renderCell(value string, colWidth int) string {
	style := lipgloss.NewStyle().Width(colWidth).MaxWidth(colWidth).Inline(true)
	return cv.cellStyle.Render(style.Render(runewidth.Truncate(value, colWidth, "…")))
}

// View renders the header and every claim, one row each
func (cv ClaimsView) View() string {
	headerCells := make([]string, 0, len(cv.columns))
	for _, col := range cv.columns {
		style := lipgloss.NewStyle().Width(col.Width).MaxWidth(col.Width).Inline(true)
		cell := style.Render(col.Title)
		headerCells = append(headerCells, cv.headerStyle.Render(cv.cellStyle.Render(cell)))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, headerCells...)

	lines := []string{header}
	for _, row := range cv.rows() {
		cells := make([]string, 0, len(cv.columns))
		for ci, value := range row {
			cells = append(cells, cv.renderCell(value, cv.columns[ci].Width))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func getImportanceText(importance string) string {
	switch strings.ToLower(importance) {
	case "high":
		return "🔴 High"
	case "medium":
		return "🟡 Med"
	case "low":
		return "🟢 Low"
	case "":
		return "  —"
	default:
		return Truncate(importance, 8)
	}
}

// Truncate shortens s to maxLen display cells
func Truncate(s string, maxLen int) string {
	if runewidth.StringWidth(s) > maxLen {
		return runewidth.Truncate(s, maxLen, "…")
	}
	return s
}
