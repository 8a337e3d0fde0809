package countup

import "fmt"

// StyleRole tags a cell with its visual role; the host theme maps roles to
// concrete styles.
type StyleRole int

const (
	// StyleHeading is the "Since <date> it's been" line.
	StyleHeading StyleRole = iota
	// StyleValue is a counter number.
	StyleValue
	// StyleUnit is a unit label such as YEARS.
	StyleUnit
	// StyleConnective is the small "or" between diff rows.
	StyleConnective
)

// Align controls how a cell's text relates to its column.
type Align int

const (
	// AlignLeft places the text starting at the column.
	AlignLeft Align = iota
	// AlignRight places the text ending at the column.
	AlignRight
)

// Cell is one positioned piece of text. Columns and rows are in character
// cells; the host rasterizer owns fonts and screen placement.
type Cell struct {
	Text  string
	Col   int
	Row   int
	Style StyleRole
	Align Align
}

// RenderModel is everything the host needs to draw one frame.
type RenderModel struct {
	Mode  Mode
	Cells []Cell
}

// Layout holds the column offsets and row spacing of the widget.
type Layout struct {
	HeadingCol int
	HeadingRow int
	ValueCol   int // right edge of the number column
	UnitCol    int // left edge of the unit column
	FirstRow   int
	RowStride  int
}

// DefaultLayout returns the widget's standard geometry.
func DefaultLayout() Layout {
	return Layout{
		HeadingCol: 1,
		HeadingRow: 0,
		ValueCol:   20,
		UnitCol:    22,
		FirstRow:   2,
		RowStride:  2,
	}
}

// RenderModel produces the positioned cells for the current frame. It does
// not mutate the controller; calling it twice yields identical output.
func (c *Controller) RenderModel() RenderModel {
	if c.mode == ModeDiff {
		return RenderModel{Mode: ModeDiff, Cells: diffCells(c.displayedDays, c.startLabel, c.layout)}
	}
	return RenderModel{Mode: ModeSplit, Cells: splitCells(c.displayedDays, c.startLabel, c.layout)}
}

// SplitBreakdown decomposes a day count into years, months, and days using a
// flat 365-day year and 28-day month. The approximation is intentional; the
// three parts always recompose to the input.
func SplitBreakdown(days int) (y, m, d int) {
	y = days / 365
	rem := days - y*365
	m = rem / 28
	d = rem - m*28
	return y, m, d
}

// DiffBreakdown expresses the same day count independently in each unit.
// The values deliberately overlap; it is an "or" reading, not a partition.
func DiffBreakdown(days int) (d, w, m, y int) {
	return days, days / 7, days / 28, days / 365
}

func headingCell(label string, l Layout) Cell {
	return Cell{
		Text:  fmt.Sprintf("Since %s it's been", label),
		Col:   l.HeadingCol,
		Row:   l.HeadingRow,
		Style: StyleHeading,
	}
}

func counterRow(value int, unit string, row int, l Layout) []Cell {
	return []Cell{
		{Text: fmt.Sprintf("%d", value), Col: l.ValueCol, Row: row, Style: StyleValue, Align: AlignRight},
		{Text: unit, Col: l.UnitCol, Row: row, Style: StyleUnit},
	}
}

func splitCells(days int, label string, l Layout) []Cell {
	y, m, d := SplitBreakdown(days)

	cells := []Cell{headingCell(label, l)}
	row := l.FirstRow
	for _, pair := range []struct {
		value int
		unit  string
	}{{y, "YEARS"}, {m, "MONTHS"}, {d, "DAYS"}} {
		cells = append(cells, counterRow(pair.value, pair.unit, row, l)...)
		row += l.RowStride
	}
	return cells
}

func diffCells(days int, label string, l Layout) []Cell {
	d, w, m, y := DiffBreakdown(days)

	cells := []Cell{headingCell(label, l)}
	rows := []struct {
		value int
		unit  string
	}{{d, "DAYS"}, {w, "WEEKS"}, {m, "MONTHS"}, {y, "YEARS"}}

	row := l.FirstRow
	for i, pair := range rows {
		cells = append(cells, counterRow(pair.value, pair.unit, row, l)...)
		if i < len(rows)-1 {
			cells = append(cells, Cell{
				Text:  "or",
				Col:   l.UnitCol + len(pair.unit) + 1,
				Row:   row + 1,
				Style: StyleConnective,
			})
		}
		row += l.RowStride
	}
	return cells
}
