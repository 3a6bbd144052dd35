package sheetpack

import (
	"github.com/kimhi1983/sheetpack/pkg/sheetpack/archive"
	"github.com/kimhi1983/sheetpack/pkg/sheetpack/models"
	"github.com/kimhi1983/sheetpack/pkg/sheetpack/ooxml"
)

// Generate encodes headers and rows into a complete single-sheet
// workbook and returns the document bytes.
//
// The encode is one synchronous pass with no state shared across
// calls, so concurrent Generate calls need no coordination. Either a
// complete valid document is returned or an error and no document;
// compressor failures propagate unchanged as *archive.EntryError.
func Generate(headers []string, rows []models.Row, opts Options) ([]byte, error) {
	parts := ooxml.BuildParts(headers, rows, opts.EffectiveSheetName())

	entries := make([]archive.Entry, len(parts))
	for i, p := range parts {
		entries[i] = archive.Entry{Path: p.Path, Data: p.Data}
	}

	builder := archive.NewBuilder(archive.NewFlateCompressor(opts.EffectiveCompressionLevel()))
	return builder.Build(entries)
}
