package ooxml

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kimhi1983/sheetpack/pkg/sheetpack/models"
)

func TestStringTableDedup(t *testing.T) {
	tab := NewStringTable()
	if i := tab.Add("alpha"); i != 0 {
		t.Errorf("Add(alpha) = %d, want 0", i)
	}
	if i := tab.Add("beta"); i != 1 {
		t.Errorf("Add(beta) = %d, want 1", i)
	}
	if i := tab.Add("alpha"); i != 0 {
		t.Errorf("repeated Add(alpha) = %d, want 0", i)
	}
	if got := tab.Strings(); !reflect.DeepEqual(got, []string{"alpha", "beta"}) {
		t.Errorf("Strings() = %v, want [alpha beta]", got)
	}
}

func TestStringTableFirstSeenOrder(t *testing.T) {
	headers := []string{"Name", "Qty"}
	rows := []models.Row{
		{models.Text("Widget"), models.Number(3)},
		{models.Text("Gadget"), models.Number(5)},
		{models.Text("Widget"), models.Number(1)},
	}

	tab := NewStringTable()
	worksheetXML(headers, rows, tab)

	want := []string{"Name", "Qty", "Widget", "Gadget"}
	if got := tab.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("table order = %v, want %v", got, want)
	}
}

func TestStringTableCounts(t *testing.T) {
	tab := NewStringTable()
	tab.Add("x")
	tab.Add("y")
	tab.Add("x")

	xml := string(tab.XML())
	if !strings.Contains(xml, `count="3"`) {
		t.Errorf("expected count=3 in %s", xml)
	}
	if !strings.Contains(xml, `uniqueCount="2"`) {
		t.Errorf("expected uniqueCount=2 in %s", xml)
	}
}

func TestStringTableEscaping(t *testing.T) {
	tab := NewStringTable()
	tab.Add(`a<b>&"c'd`)

	xml := string(tab.XML())
	want := `<si><t>a&lt;b&gt;&amp;&quot;c'd</t></si>`
	if !strings.Contains(xml, want) {
		t.Errorf("expected %s in %s", want, xml)
	}
}
