package table

import (
	"strings"
	"testing"

	"school/pkg/ansi"
)

// allLinesSameWidth fails the test unless every rendered line has the same
// visible width.
func allLinesSameWidth(t *testing.T, lines []string) {
	t.Helper()
	for _, line := range lines[1:] {
		if ansi.Width(line) != ansi.Width(lines[0]) {
			t.Errorf("ragged table:\n%s", strings.Join(lines, "\n"))
			return
		}
	}
}

func TestSingleDataRow(t *testing.T) {
	lines := Render([]Row{Data("a", "bb")})

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (top, content, bottom), got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}

	if got := ansi.Strip(lines[1]); got != "│ a │ bb │" {
		t.Errorf("content line = %q", got)
	}
	if lines[0] != "╭────────╮" {
		t.Errorf("top border = %q", lines[0])
	}
	if lines[2] != "╰────────╯" {
		t.Errorf("bottom border = %q", lines[2])
	}
	allLinesSameWidth(t, lines)
}

func TestColumnWidthIsMaxOverRows(t *testing.T) {
	lines := Render([]Row{
		Data("9:00", ansi.Color("Math", 39)),
		Data("10:45", "PE"),
	})

	if got := ansi.Strip(lines[1]); got != "│ 9:00  │ Math │" {
		t.Errorf("first row = %q", got)
	}
	if got := ansi.Strip(lines[2]); got != "│ 10:45 │ PE   │" {
		t.Errorf("second row = %q", got)
	}
	allLinesSameWidth(t, lines)
}

func TestLeadingSectionIsTopBorder(t *testing.T) {
	lines := Render([]Row{
		Section("Monday"),
		Data("9:00", "Math"),
	})

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	top := ansi.Strip(lines[0])
	if !strings.HasPrefix(top, "╭─") || !strings.HasSuffix(top, "─╮") {
		t.Errorf("leading section should use top corners: %q", top)
	}
	if !strings.Contains(top, "{ Monday }") {
		t.Errorf("caption missing from divider: %q", top)
	}
	allLinesSameWidth(t, lines)
}

func TestInteriorSectionUsesTees(t *testing.T) {
	lines := Render([]Row{
		Data("9:00", "Math"),
		Section("Tuesday"),
		Data("10:45", "PE"),
	})

	divider := ansi.Strip(lines[2])
	if !strings.HasPrefix(divider, "├─") || !strings.HasSuffix(divider, "─┤") {
		t.Errorf("interior section should use tee corners: %q", divider)
	}
	allLinesSameWidth(t, lines)
}

func TestConsecutiveSectionsConnect(t *testing.T) {
	lines := Render([]Row{
		Section("Monday"),
		Section("Tuesday"),
		Data("9:00", "Math"),
	})

	// top divider, second divider, content, bottom: no blank filler lines
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	second := ansi.Strip(lines[1])
	if !strings.HasPrefix(second, "├─") || !strings.HasSuffix(second, "─┤") {
		t.Errorf("second consecutive section = %q", second)
	}
	allLinesSameWidth(t, lines)
}

func TestMismatchedArityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on mismatched row arity")
		}
	}()
	Render([]Row{Data("a"), Data("a", "b")})
}

func TestStyledCellsDoNotSkewLayout(t *testing.T) {
	plain := Render([]Row{Data("9:00", "Math"), Data("10:45", "PE")})
	styled := Render([]Row{
		Data("9:00", ansi.Color("Math", 118)),
		Data(ansi.Bold("10:45"), ansi.Gray("PE")),
	})

	for i := range plain {
		if ansi.Strip(plain[i]) != ansi.Strip(styled[i]) {
			t.Errorf("line %d: styled layout diverged:\n%q\n%q", i, ansi.Strip(plain[i]), ansi.Strip(styled[i]))
		}
	}
}
