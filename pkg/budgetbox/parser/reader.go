// Package parser reads tabular proposal exports from CSV or Excel sources.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/budgetbox/budgetbox-go/logging"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/models"
)

// ErrEmptySource indicates the source held no rows at or below the header row.
var ErrEmptySource = errors.New("empty source")

// ReadFile reads a table from a .csv, .xls, or .xlsx file. headerRow is the
// 1-based row holding the column names; rows above it are discarded.
func ReadFile(path string, headerRow int) (models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Table{}, err
	}
	defer f.Close()
	return Read(f, filepath.Base(path), headerRow)
}

// Read reads a table from r. The filename selects the format by extension;
// anything other than .csv is treated as an Excel workbook.
func Read(r io.Reader, filename string, headerRow int) (models.Table, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return readCSV(r, headerRow)
	}
	return readExcel(r, headerRow)
}

func readCSV(r io.Reader, headerRow int) (models.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return models.Table{}, fmt.Errorf("read csv: %w", err)
	}
	return buildTable(rows, headerRow)
}

func readExcel(r io.Reader, headerRow int) (models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return models.Table{}, ErrEmptySource
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return models.Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return buildTable(rows, headerRow)
}

// buildTable turns raw rows into a Table: the header row names the columns
// (blank header cells get synthesized names), and every data row is padded
// or truncated to the header width.
func buildTable(rows [][]string, headerRow int) (models.Table, error) {
	if headerRow < 1 {
		headerRow = 1
	}
	if len(rows) < headerRow {
		return models.Table{}, ErrEmptySource
	}

	raw := rows[headerRow-1]
	columns := make([]string, len(raw))
	blanks := 0
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column %d", i+1)
			blanks++
		}
		columns[i] = h
	}
	if blanks > 0 {
		logging.Logger().Warn("blank header cells, names synthesized",
			"count", blanks, "header_row", headerRow)
	}

	t := models.Table{Columns: columns}
	for _, row := range rows[headerRow:] {
		nr := make(models.Row, len(columns))
		for j := range nr {
			if j < len(row) {
				nr[j] = row[j]
			}
		}
		t.Rows = append(t.Rows, nr)
	}
	return t, nil
}
