// Package main provides the CLI entry point for sheetpack.
package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kimhi1983/sheetpack/pkg/sheetpack"
	"github.com/kimhi1983/sheetpack/pkg/sheetpack/models"
)

var (
	outputPath string
	sheetName  string
	delimiter  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetpack [input.csv]",
		Short: "Convert CSV data to an Excel workbook",
		Long: `sheetpack converts a CSV file into a single-sheet .xlsx workbook.
The first record becomes the header row; numeric fields are written
as numbers, everything else as shared strings.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input name with .xlsx)")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: Sheet1)")
	rootCmd.Flags().StringVar(&delimiter, "delimiter", ",", "CSV field delimiter")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if len(delimiter) != 1 {
		return fmt.Errorf("invalid delimiter %q (must be a single character)", delimiter)
	}

	headers, rows, err := readTable(inputPath, rune(delimiter[0]))
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	out, err := sheetpack.Generate(headers, rows, sheetpack.Options{SheetName: sheetName})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	target := outputPath
	if target == "" {
		target = strings.TrimSuffix(inputPath, ".csv") + ".xlsx"
	}
	if err := os.WriteFile(target, out, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// readTable loads a CSV file, treating the first record as the header
// row and the rest as data rows.
func readTable(path string, delim rune) ([]string, []models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	headers := records[0]
	rows := make([]models.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(models.Row, len(record))
		for i, field := range record {
			row[i] = parseCell(field)
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

// parseCell coerces a CSV field: empty fields stay absent, finite
// decimal numbers become numeric cells, everything else is text.
// NaN and the infinities have no numeric cell form, so they stay text.
func parseCell(field string) models.Cell {
	if field == "" {
		return models.Cell{}
	}
	if v, err := strconv.ParseFloat(field, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return models.Number(v)
	}
	return models.Text(field)
}
