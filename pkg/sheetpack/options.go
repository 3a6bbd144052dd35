// Package sheetpack generates single-sheet OOXML spreadsheet documents.
package sheetpack

import "compress/flate"

// DefaultSheetName is used when Options.SheetName is empty.
const DefaultSheetName = "Sheet1"

// Options configures document generation.
type Options struct {
	// SheetName is the name of the single worksheet.
	// If empty, DefaultSheetName is used.
	SheetName string
	// CompressionLevel is the deflate level for archive entries.
	// If nil, defaults to flate.DefaultCompression.
	CompressionLevel *int
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{}
}

// EffectiveSheetName returns the worksheet name to use.
func (o Options) EffectiveSheetName() string {
	if o.SheetName != "" {
		return o.SheetName
	}
	return DefaultSheetName
}

// EffectiveCompressionLevel returns the deflate level to use.
func (o Options) EffectiveCompressionLevel() int {
	if o.CompressionLevel != nil {
		return *o.CompressionLevel
	}
	return flate.DefaultCompression
}
