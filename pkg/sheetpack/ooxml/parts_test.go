package ooxml

import (
	"strings"
	"testing"

	"github.com/kimhi1983/sheetpack/pkg/sheetpack/models"
)

func TestBuildPartsSet(t *testing.T) {
	parts := BuildParts([]string{"Name"}, []models.Row{{models.Text("v")}}, "Sheet1")

	want := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/worksheets/sheet1.xml",
		"xl/styles.xml",
		"xl/sharedStrings.xml",
	}
	if len(parts) != len(want) {
		t.Fatalf("got %d parts, want %d", len(parts), len(want))
	}
	for i, p := range parts {
		if p.Path != want[i] {
			t.Errorf("part %d: path = %q, want %q", i, p.Path, want[i])
		}
		if len(p.Data) == 0 {
			t.Errorf("part %q is empty", p.Path)
		}
		if !strings.HasPrefix(string(p.Data), `<?xml version="1.0"`) {
			t.Errorf("part %q missing XML prolog", p.Path)
		}
	}
}

func TestWorkbookSheetName(t *testing.T) {
	parts := BuildParts(nil, nil, `Q1 "Sales" & <More>`)

	var workbook string
	for _, p := range parts {
		if p.Path == "xl/workbook.xml" {
			workbook = string(p.Data)
		}
	}
	want := `<sheet name="Q1 &quot;Sales&quot; &amp; &lt;More&gt;" sheetId="1" r:id="rId1"/>`
	if !strings.Contains(workbook, want) {
		t.Errorf("expected %s in %s", want, workbook)
	}
}

func TestBuildPartsEmptyInput(t *testing.T) {
	parts := BuildParts(nil, nil, "Empty")

	var sheet, sst string
	for _, p := range parts {
		switch p.Path {
		case "xl/worksheets/sheet1.xml":
			sheet = string(p.Data)
		case "xl/sharedStrings.xml":
			sst = string(p.Data)
		}
	}
	if !strings.Contains(sheet, `<dimension ref="A1"/>`) {
		t.Errorf("empty headers should yield single-cell dimension, got %s", sheet)
	}
	if !strings.Contains(sst, `count="0" uniqueCount="0"`) {
		t.Errorf("expected empty string table, got %s", sst)
	}
}

func TestStylesTwoCellFormats(t *testing.T) {
	parts := BuildParts(nil, nil, "S")

	var styles string
	for _, p := range parts {
		if p.Path == "xl/styles.xml" {
			styles = string(p.Data)
		}
	}
	if !strings.Contains(styles, `<cellXfs count="2">`) {
		t.Errorf("expected exactly two cell formats, got %s", styles)
	}
	if !strings.Contains(styles, `fontId="1" fillId="2"`) {
		t.Errorf("header format should use the bold font and solid fill, got %s", styles)
	}
}
