package app

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// table is one exportable block of parallel numeric columns.
type table struct {
	name    string
	headers []string
	columns [][]float64
}

func (t table) rows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0])
}

// writeCSVTables writes one CSV file per table, suffixing the table name onto
// the output path.
func writeCSVTables(output string, tables []table) error {
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	for _, t := range tables {
		path := fmt.Sprintf("%s_%s%s", base, t.name, ext)
		if err := writeCSVTable(path, t); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVTable(path string, t table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	record := make([]string, len(t.columns))
	for row := 0; row < t.rows(); row++ {
		for col := range t.columns {
			record[col] = strconv.FormatFloat(t.columns[col][row], 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// writeXLSXTables writes all tables into one workbook, one sheet per table.
func writeXLSXTables(output string, tables []table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(t.name); err != nil {
				return fmt.Errorf("failed to add sheet: %w", err)
			}
		}

		header := make([]interface{}, len(t.headers))
		for col, h := range t.headers {
			header[col] = h
		}
		if err := f.SetSheetRow(t.name, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}

		values := make([]interface{}, len(t.columns))
		for row := 0; row < t.rows(); row++ {
			for col := range t.columns {
				values[col] = t.columns[col][row]
			}
			cell, err := excelize.CoordinatesToCellName(1, row+2)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetSheetRow(t.name, cell, &values); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	if err := f.SaveAs(output); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
