package ooxml

import (
	"bytes"
	"fmt"
	"strings"
)

// xmlEscaper rewrites exactly the four characters the shared string
// and scaffold parts must escape. Nothing else is altered.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return xmlEscaper.Replace(s)
}

// StringTable deduplicates text cell values. Each unique string gets
// the index of its first appearance; worksheet cells store only that
// index. A StringTable is local to one serialization pass.
type StringTable struct {
	values []string
	index  map[string]int
	refs   int
}

// NewStringTable returns an empty StringTable.
func NewStringTable() *StringTable {
	return &StringTable{index: make(map[string]int)}
}

// Add records one cell reference to s and returns its table index,
// assigning the next free index if s has not been seen before.
func (t *StringTable) Add(s string) int {
	t.refs++
	if i, ok := t.index[s]; ok {
		return i
	}
	i := len(t.values)
	t.values = append(t.values, s)
	t.index[s] = i
	return i
}

// Strings returns the table contents in index order.
func (t *StringTable) Strings() []string {
	return t.values
}

// XML renders the xl/sharedStrings.xml part.
func (t *StringTable) XML() []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlProlog)
	fmt.Fprintf(&buf, `<sst xmlns=%q count="%d" uniqueCount="%d">`, nsSpreadsheetML, t.refs, len(t.values))
	for _, s := range t.values {
		fmt.Fprintf(&buf, "<si><t>%s</t></si>", escape(s))
	}
	buf.WriteString("</sst>")
	return buf.Bytes()
}
