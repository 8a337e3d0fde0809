package countup

import (
	"reflect"
	"testing"
	"time"
)

func TestSplitBreakdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		days    int
		y, m, d int
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 1},
		{27, 0, 0, 27},
		{28, 0, 1, 0},
		{364, 0, 13, 0},
		{365, 1, 0, 0},
		{400, 1, 1, 7},
		{730, 2, 0, 0},
	}

	for _, tt := range tests {
		y, m, d := SplitBreakdown(tt.days)
		if y != tt.y || m != tt.m || d != tt.d {
			t.Errorf("SplitBreakdown(%d) = %d/%d/%d, want %d/%d/%d",
				tt.days, y, m, d, tt.y, tt.m, tt.d)
		}
	}
}

func TestSplitBreakdown_Recomposes(t *testing.T) {
	t.Parallel()

	for days := 0; days < 2000; days++ {
		y, m, d := SplitBreakdown(days)
		if y*365+m*28+d != days {
			t.Fatalf("SplitBreakdown(%d) = %d/%d/%d does not recompose", days, y, m, d)
		}
		if d < 0 || d >= 28 {
			t.Fatalf("SplitBreakdown(%d): day part %d out of range", days, d)
		}
	}
}

func TestDiffBreakdown(t *testing.T) {
	t.Parallel()

	d, w, m, y := DiffBreakdown(400)
	if d != 400 || w != 57 || m != 14 || y != 1 {
		t.Errorf("DiffBreakdown(400) = %d/%d/%d/%d, want 400/57/14/1", d, w, m, y)
	}

	// Each unit is computed from the raw day count, not from the others.
	d, w, m, y = DiffBreakdown(29)
	if d != 29 || w != 4 || m != 1 || y != 0 {
		t.Errorf("DiffBreakdown(29) = %d/%d/%d/%d, want 29/4/1/0", d, w, m, y)
	}
}

func newTestController(totalDays int) *Controller {
	start := time.Date(2022, 11, 25, 0, 0, 0, 0, time.UTC)
	return New(totalDays, "25/11/2022", start, Config{
		Now: func() time.Time { return start.Add(time.Duration(totalDays) * 24 * time.Hour) },
	})
}

func TestRenderModel_Idempotent(t *testing.T) {
	t.Parallel()

	c := newTestController(400)
	for i := 0; i < 30; i++ {
		c.Update(testTick)
	}

	first := c.RenderModel()
	second := c.RenderModel()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two RenderModel calls without mutation differ")
	}
}

func TestRenderModel_SplitLayout(t *testing.T) {
	t.Parallel()

	c := newTestController(400)
	for c.Animating() {
		c.Update(testTick)
	}

	m := c.RenderModel()
	if m.Mode != ModeSplit {
		t.Fatalf("mode = %v, want ModeSplit", m.Mode)
	}

	if got := m.Cells[0].Text; got != "Since 25/11/2022 it's been" {
		t.Errorf("heading = %q", got)
	}
	if got := m.Cells[0].Style; got != StyleHeading {
		t.Errorf("heading style = %v", got)
	}

	// Heading plus three value/unit pairs.
	if got := len(m.Cells); got != 7 {
		t.Fatalf("cell count = %d, want 7", got)
	}

	wantRows := []struct {
		value, unit string
	}{{"1", "YEARS"}, {"1", "MONTHS"}, {"7", "DAYS"}}

	for i, want := range wantRows {
		value := m.Cells[1+2*i]
		unit := m.Cells[2+2*i]
		if value.Text != want.value || unit.Text != want.unit {
			t.Errorf("row %d = %q %q, want %q %q", i, value.Text, unit.Text, want.value, want.unit)
		}
		if value.Align != AlignRight {
			t.Errorf("row %d value not right-aligned", i)
		}
		if value.Style != StyleValue || unit.Style != StyleUnit {
			t.Errorf("row %d style roles wrong", i)
		}
		if value.Row != unit.Row {
			t.Errorf("row %d value and unit on different rows", i)
		}
	}
}

func TestRenderModel_DiffLayout(t *testing.T) {
	t.Parallel()

	c := newTestController(400)
	for c.Animating() {
		c.Update(testTick)
	}
	c.OnKey(KeyToggle)
	for c.Animating() {
		c.Update(testTick)
	}

	m := c.RenderModel()
	if m.Mode != ModeDiff {
		t.Fatalf("mode = %v, want ModeDiff", m.Mode)
	}

	var values []string
	var connectives int
	for _, cell := range m.Cells {
		switch cell.Style {
		case StyleValue:
			values = append(values, cell.Text)
		case StyleConnective:
			if cell.Text != "or" {
				t.Errorf("connective text = %q", cell.Text)
			}
			connectives++
		}
	}

	want := []string{"400", "57", "14", "1"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("diff values = %v, want %v", values, want)
	}
	if connectives != 3 {
		t.Errorf("connective count = %d, want 3", connectives)
	}
}

func TestRenderModel_TracksAnimation(t *testing.T) {
	t.Parallel()

	c := newTestController(300)
	before := c.RenderModel()

	for i := 0; i < 10; i++ {
		c.Update(testTick)
	}
	after := c.RenderModel()

	if reflect.DeepEqual(before, after) {
		t.Fatal("render model unchanged after animation progress")
	}
}
