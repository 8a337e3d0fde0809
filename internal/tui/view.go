package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emmabritton/countup/internal/countup"
)

// widgetMargin pads the widget box around the outermost cells.
const widgetMargin = 2

// View renders the current frame: the widget box centered in the terminal
// with a one-line key help footer.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Starting countup..."
	}

	widget := renderCells(m.ctrl.RenderModel().Cells, m.theme)
	help := m.theme.Help.Render(helpLine(m.keys))

	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, widget)
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

// renderCells rasterizes positioned cells into styled lines. Right-aligned
// cells end at their column; everything else starts there.
func renderCells(cells []countup.Cell, theme Theme) string {
	maxRow := 0
	boxWidth := 0
	for _, c := range cells {
		if c.Row > maxRow {
			maxRow = c.Row
		}
		if end := cellStart(c) + len(c.Text); end > boxWidth {
			boxWidth = end
		}
	}
	boxWidth += widgetMargin

	byRow := make(map[int][]countup.Cell)
	for _, c := range cells {
		byRow[c.Row] = append(byRow[c.Row], c)
	}

	pad := theme.Background
	lines := make([]string, 0, maxRow+1)
	for row := 0; row <= maxRow; row++ {
		rowCells := byRow[row]
		slices.SortFunc(rowCells, func(a, b countup.Cell) int {
			return cellStart(a) - cellStart(b)
		})

		var line strings.Builder
		col := 0
		for _, c := range rowCells {
			start := cellStart(c)
			if start > col {
				line.WriteString(pad.Render(strings.Repeat(" ", start-col)))
				col = start
			}
			line.WriteString(theme.styleFor(c.Style).Render(c.Text))
			col += len(c.Text)
		}
		if col < boxWidth {
			line.WriteString(pad.Render(strings.Repeat(" ", boxWidth-col)))
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// cellStart returns the first column a cell occupies.
func cellStart(c countup.Cell) int {
	if c.Align == countup.AlignRight {
		start := c.Col - len(c.Text)
		if start < 0 {
			start = 0
		}
		return start
	}
	return c.Col
}

// helpLine joins the keymap help entries into the footer text.
func helpLine(keys KeyMap) string {
	parts := []string{
		keys.Quit.Help().Key + " " + keys.Quit.Help().Desc,
		keys.Toggle.Help().Key + " " + keys.Toggle.Help().Desc,
	}
	return strings.Join(parts, " • ")
}
