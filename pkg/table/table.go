// Package table renders rows into a bordered, column-aligned table. Cells
// may carry ANSI styling; alignment is computed on visible width only.
package table

import (
	"fmt"
	"strings"

	"school/pkg/ansi"
)

// Row is one table entry: either a data row with one cell per column or a
// section divider carrying a single caption.
type Row struct {
	cells   []string
	section bool
}

// Data builds a regular multi-column row.
func Data(cells ...string) Row {
	return Row{cells: cells}
}

// Section builds a full-width captioned divider row.
func Section(caption string) Row {
	return Row{cells: []string{caption}, section: true}
}

// Render lays the rows out as printable lines. Every data row must have the
// same number of cells; a mismatch is a bug in the caller and panics.
func Render(rows []Row) []string {
	if len(rows) == 0 {
		return nil
	}

	widths := columnWidths(rows)
	sep := ansi.Gray(" │ ")

	interior := 0
	for _, w := range widths {
		interior += w
	}
	if len(widths) > 1 {
		interior += ansi.Width(sep) * (len(widths) - 1)
	}

	var lines []string
	for i, r := range rows {
		if r.section {
			caption := ansi.Bold(fmt.Sprintf("{ %s }", r.cells[0]))
			rule := ansi.Center(caption, interior, '─')
			if i == 0 {
				lines = append(lines, "╭─"+rule+"─╮")
			} else {
				lines = append(lines, "├─"+rule+"─┤")
			}
			continue
		}

		if i == 0 {
			lines = append(lines, "╭"+strings.Repeat("─", interior+2)+"╮")
		}

		cells := make([]string, len(r.cells))
		for j, c := range r.cells {
			cells[j] = ansi.PadRight(c, widths[j])
		}
		lines = append(lines, "│ "+strings.Join(cells, sep)+" │")
	}

	lines = append(lines, "╰"+strings.Repeat("─", interior+2)+"╯")
	return lines
}

// columnWidths computes the visible width of each column as the maximum
// over all data rows. Section rows do not participate.
func columnWidths(rows []Row) []int {
	var widths []int
	for _, r := range rows {
		if r.section {
			continue
		}
		if widths == nil {
			widths = make([]int, len(r.cells))
		}
		if len(r.cells) != len(widths) {
			panic(fmt.Sprintf("table: data row has %d cells, want %d", len(r.cells), len(widths)))
		}
		for j, c := range r.cells {
			if w := ansi.Width(c); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}
