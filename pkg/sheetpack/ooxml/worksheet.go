package ooxml

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/kimhi1983/sheetpack/pkg/sheetpack/models"
)

// ColumnRef converts a 0-based column index to its spreadsheet letter
// form: 0 -> "A", 25 -> "Z", 26 -> "AA", 701 -> "ZZ".
func ColumnRef(col int) string {
	var ref []byte
	for col >= 0 {
		ref = append([]byte{byte('A' + col%26)}, ref...)
		col = col/26 - 1
	}
	return string(ref)
}

// cellRef builds an "A1"-style reference from 0-based column and
// 1-based row numbers.
func cellRef(col, row int) string {
	return ColumnRef(col) + strconv.Itoa(row)
}

// dimensionRef computes the sheet's used range, spanning the header
// row through the last data row. With no headers the range degenerates
// to the single cell A1.
func dimensionRef(headers []string, rows []models.Row) string {
	if len(headers) == 0 {
		return "A1"
	}
	return "A1:" + cellRef(len(headers)-1, len(rows)+1)
}

// worksheetXML renders the xl/worksheets/sheet1.xml part. Text cell
// values are interned into strtab as they are encountered, headers
// first and then data cells in row-then-column order, so the table's
// first-seen indices match the scan order.
func worksheetXML(headers []string, rows []models.Row, strtab *StringTable) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlProlog)
	fmt.Fprintf(&buf, `<worksheet xmlns=%q>`, nsSpreadsheetML)
	fmt.Fprintf(&buf, `<dimension ref="%s"/>`, dimensionRef(headers, rows))
	buf.WriteString("<sheetData>")

	buf.WriteString(`<row r="1">`)
	for col, h := range headers {
		fmt.Fprintf(&buf, `<c r="%s" t="s" s="1"><v>%d</v></c>`, cellRef(col, 1), strtab.Add(h))
	}
	buf.WriteString("</row>")

	for i, row := range rows {
		r := i + 2 // 1-based, offset past the header row
		fmt.Fprintf(&buf, `<row r="%d">`, r)
		for col, cell := range row {
			switch cell.Kind {
			case models.CellNumber:
				fmt.Fprintf(&buf, `<c r="%s"><v>%s</v></c>`,
					cellRef(col, r), strconv.FormatFloat(cell.Number, 'f', -1, 64))
			case models.CellText:
				fmt.Fprintf(&buf, `<c r="%s" t="s"><v>%d</v></c>`, cellRef(col, r), strtab.Add(cell.Text))
			}
		}
		buf.WriteString("</row>")
	}

	buf.WriteString("</sheetData></worksheet>")
	return buf.Bytes()
}
