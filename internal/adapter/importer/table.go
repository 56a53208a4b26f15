package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"business_manager/internal/domain/entities"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format: must be .csv or .xlsx")
	ErrEmptyTable        = errors.New("file must contain a header row")
)

// MaxUploadBytes caps the size of an uploaded sheet.
const MaxUploadBytes = 5 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadTable parses a CSV or XLSX upload, chosen by the file extension.
// Blank rows are skipped and cells are trimmed.
func ReadTable(filename string, r io.Reader) (entities.Table, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		rows, err = readCSV(r)
	case ".xlsx":
		rows, err = readXLSX(r)
	default:
		return entities.Table{}, ErrUnsupportedFormat
	}
	if err != nil {
		return entities.Table{}, err
	}

	rows = dropBlankRows(rows)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return entities.Table{}, ErrEmptyTable
	}
	return entities.Table{Headers: rows[0], Rows: rows[1:]}, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return rows, nil
}

func dropBlankRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		blank := true
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
			if row[i] != "" {
				blank = false
			}
		}
		if !blank {
			out = append(out, row)
		}
	}
	return out
}
