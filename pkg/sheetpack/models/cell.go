// Package models defines the tabular data structures for workbook generation.
package models

// CellKind discriminates the three cell value forms.
type CellKind int

const (
	// CellAbsent marks a cell with no value. Absent cells are omitted
	// from the worksheet entirely rather than written as empty.
	CellAbsent CellKind = iota
	// CellNumber marks a numeric cell, written as literal decimal text.
	CellNumber
	// CellText marks a text cell, stored via the shared string table.
	CellText
)

// Cell is one cell value: absent, numeric, or text.
// The zero value is an absent cell.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// Row is an ordered sequence of cells, positionally aligned to the
// header columns. A row may be shorter than the header list; the
// missing trailing cells are treated as absent.
type Row []Cell
