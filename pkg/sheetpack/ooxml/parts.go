// Package ooxml serializes tabular data into the fixed set of XML
// parts an OOXML spreadsheet package requires: content types,
// relationships, workbook, one worksheet, a shared string table, and
// a minimal style sheet.
//
// The parts are assembled by hand rather than through encoding/xml:
// the format subset is fixed, and the stdlib marshaler escapes more
// characters than the documented output does.
package ooxml

import (
	"fmt"

	"github.com/kimhi1983/sheetpack/pkg/sheetpack/models"
)

const xmlProlog = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// OOXML namespaces referenced by the scaffold parts.
const (
	nsSpreadsheetML = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsOfficeDocRels = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Part is one named XML payload of the package.
type Part struct {
	// Path is the part's location inside the package archive.
	Path string
	// Data is the UTF-8 XML document.
	Data []byte
}

// BuildParts serializes headers and rows into the complete part set
// of a single-sheet workbook, in package order. It never fails; empty
// headers or rows produce a degenerate but well-formed worksheet.
func BuildParts(headers []string, rows []models.Row, sheetName string) []Part {
	strtab := NewStringTable()
	sheet := worksheetXML(headers, rows, strtab)

	return []Part{
		{Path: "[Content_Types].xml", Data: contentTypesXML()},
		{Path: "_rels/.rels", Data: rootRelsXML()},
		{Path: "xl/workbook.xml", Data: workbookXML(sheetName)},
		{Path: "xl/_rels/workbook.xml.rels", Data: workbookRelsXML()},
		{Path: "xl/worksheets/sheet1.xml", Data: sheet},
		{Path: "xl/styles.xml", Data: stylesXML()},
		{Path: "xl/sharedStrings.xml", Data: strtab.XML()},
	}
}

func contentTypesXML() []byte {
	return []byte(xmlProlog +
		fmt.Sprintf(`<Types xmlns=%q>`, nsContentTypes) +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>` +
		`<Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>` +
		`<Override PartName="/xl/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"/>` +
		`<Override PartName="/xl/sharedStrings.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"/>` +
		`</Types>`)
}

func rootRelsXML() []byte {
	return []byte(xmlProlog +
		fmt.Sprintf(`<Relationships xmlns=%q>`, nsPackageRels) +
		fmt.Sprintf(`<Relationship Id="rId1" Type="%s/officeDocument" Target="xl/workbook.xml"/>`, nsOfficeDocRels) +
		`</Relationships>`)
}

func workbookXML(sheetName string) []byte {
	return []byte(xmlProlog +
		fmt.Sprintf(`<workbook xmlns=%q xmlns:r=%q>`, nsSpreadsheetML, nsOfficeDocRels) +
		fmt.Sprintf(`<sheets><sheet name="%s" sheetId="1" r:id="rId1"/></sheets>`, escape(sheetName)) +
		`</workbook>`)
}

func workbookRelsXML() []byte {
	return []byte(xmlProlog +
		fmt.Sprintf(`<Relationships xmlns=%q>`, nsPackageRels) +
		fmt.Sprintf(`<Relationship Id="rId1" Type="%s/worksheet" Target="worksheets/sheet1.xml"/>`, nsOfficeDocRels) +
		fmt.Sprintf(`<Relationship Id="rId2" Type="%s/styles" Target="styles.xml"/>`, nsOfficeDocRels) +
		fmt.Sprintf(`<Relationship Id="rId3" Type="%s/sharedStrings" Target="sharedStrings.xml"/>`, nsOfficeDocRels) +
		`</Relationships>`)
}

// stylesXML renders the fixed two-format style sheet: cell format 0
// is the default, cell format 1 is the bold, filled header style.
// The gray125 fill at index 1 is reserved by the format; the header
// fill therefore sits at index 2.
func stylesXML() []byte {
	return []byte(xmlProlog +
		fmt.Sprintf(`<styleSheet xmlns=%q>`, nsSpreadsheetML) +
		`<fonts count="2"><font><sz val="11"/><name val="Calibri"/></font><font><b/><sz val="11"/><name val="Calibri"/></font></fonts>` +
		`<fills count="3">` +
		`<fill><patternFill patternType="none"/></fill>` +
		`<fill><patternFill patternType="gray125"/></fill>` +
		`<fill><patternFill patternType="solid"><fgColor rgb="FFDDDDDD"/><bgColor indexed="64"/></patternFill></fill>` +
		`</fills>` +
		`<borders count="1"><border><left/><right/><top/><bottom/><diagonal/></border></borders>` +
		`<cellStyleXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0"/></cellStyleXfs>` +
		`<cellXfs count="2">` +
		`<xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0"/>` +
		`<xf numFmtId="0" fontId="1" fillId="2" borderId="0" xfId="0" applyFont="1" applyFill="1"/>` +
		`</cellXfs>` +
		`</styleSheet>`)
}
