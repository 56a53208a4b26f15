package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"business_manager/internal/domain/entities"
)

const maxSheetName = 31

type sheetStyles struct {
	title  int
	header int
	body   int
	label  int
}

func writeDocumentXLSX(company string, d entities.Document) ([]byte, error) {
	name := d.Number
	if name == "" {
		name = kindLabel(d.Kind)
	}
	subtitle := []string{
		fmt.Sprintf("%s %s", kindLabel(d.Kind), d.Number),
		fmt.Sprintf("Customer: %s", d.Customer.Name),
		fmt.Sprintf("Date: %s", formatDate(d.Date)),
	}
	return writeXLSX(name, company, subtitle, documentTable(d), []float64{40, 10, 10, 16, 16})
}

func writeListXLSX(company string, kind entities.DocumentKind, docs []entities.Document) ([]byte, error) {
	title := kindLabel(kind) + "s"
	return writeXLSX(title, company, []string{title}, listTable(docs), []float64{16, 32, 14, 16, 12})
}

// writeXLSX lays out a single sheet: company name, subtitle lines, a blank
// row, then table with its first row styled as the header.
func writeXLSX(sheetName, company string, subtitle []string, table [][]string, widths []float64) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if len(sheetName) > maxSheetName {
		sheetName = sheetName[:maxSheetName]
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	for i, w := range widths {
		c, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, c, c, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	st, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	r := 1
	if err := setRow(f, sheetName, r, []string{company}, st.title); err != nil {
		return nil, err
	}
	for _, line := range subtitle {
		r++
		if err := setRow(f, sheetName, r, []string{line}, 0); err != nil {
			return nil, err
		}
	}
	r++

	for i, cells := range table {
		r++
		style := st.body
		switch {
		case i == 0:
			style = st.header
		case len(cells) == 0:
			continue
		case isSummaryRow(cells):
			style = st.label
		}
		if err := setRow(f, sheetName, r, cells, style); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var st sheetStyles
	var err error

	st.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return st, fmt.Errorf("create title style: %w", err)
	}

	st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return st, fmt.Errorf("create header style: %w", err)
	}

	st.body, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return st, fmt.Errorf("create body style: %w", err)
	}

	st.label, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return st, fmt.Errorf("create summary style: %w", err)
	}
	return st, nil
}

func setRow(f *excelize.File, sheet string, r int, cells []string, style int) error {
	for i, v := range cells {
		ref, err := excelize.CoordinatesToCellName(i+1, r)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, ref, sanitizeCell(v)); err != nil {
			return fmt.Errorf("set cell %s: %w", ref, err)
		}
		if style != 0 {
			if err := f.SetCellStyle(sheet, ref, ref, style); err != nil {
				return fmt.Errorf("set style %s: %w", ref, err)
			}
		}
	}
	return nil
}

func isSummaryRow(cells []string) bool {
	switch cells[0] {
	case "Parts", "Labor", "Total":
		return len(cells) > 1 && cells[1] == ""
	}
	return false
}

// sanitizeCell keeps user text from being evaluated as a formula by
// spreadsheet applications opening the XLSX or CSV output.
func sanitizeCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
