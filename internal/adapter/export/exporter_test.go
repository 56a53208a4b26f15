package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"business_manager/internal/domain/entities"
)

func sampleInvoice() entities.Document {
	return entities.Document{
		ID:       "doc-1",
		Number:   "I-2026-0007",
		Kind:     entities.DocumentKindInvoice,
		Customer: entities.Customer{ID: "c1", Name: "Acme, Inc.", Email: "billing@acme.test"},
		Title:    "Brake service",
		Date:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		DueDate:  time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC),
		Status:   entities.DocumentStatusPending,
		Notes:    "Thank you",
		Items: []entities.DocumentItem{
			{ID: "i1", Description: "Brake pad", Type: "item", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("55"), Total: decimal.RequireFromString("110")},
			{ID: "i2", Description: "Mechanic", Type: "labor", Quantity: decimal.RequireFromString("1.5"), UnitPrice: decimal.RequireFromString("66.67"), Total: decimal.RequireFromString("100.005")},
		},
		MarkupPercent: decimal.NewFromInt(10),
		TotalAmount:   decimal.RequireFromString("210.005"),
	}
}

func readCSV(t *testing.T, b []byte) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(b))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportDocument_CSV(t *testing.T) {
	file, err := NewExporter("Shop").ExportDocument(entities.ExportFormatCSV, sampleInvoice())
	require.NoError(t, err)

	assert.Equal(t, "I-2026-0007.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	rows := readCSV(t, file.Content)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Description", "Type", "Quantity", "Unit Price", "Total"}, rows[0])
	assert.Equal(t, []string{"Brake pad", "Part", "2", "$55.00", "$110.00"}, rows[1])
	assert.Equal(t, []string{"Mechanic", "Labor", "1.5", "$66.67", "$100.01"}, rows[2])
	assert.Equal(t, []string{"Parts", "", "", "", "$110.00"}, rows[3])
	assert.Equal(t, []string{"Labor", "", "", "", "$100.01"}, rows[4])
	assert.Equal(t, []string{"Total", "", "", "", "$210.01"}, rows[5])
}

func TestExportList_CSVQuotesCommas(t *testing.T) {
	docs := []entities.Document{sampleInvoice()}
	file, err := NewExporter("Shop").ExportList(entities.ExportFormatCSV, entities.DocumentKindInvoice, docs)
	require.NoError(t, err)

	assert.Equal(t, "invoices.csv", file.Filename)
	assert.Contains(t, string(file.Content), `"Acme, Inc."`)

	rows := readCSV(t, file.Content)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Number", "Customer", "Date", "Total Amount", "Status"}, rows[0])
	assert.Equal(t, []string{"I-2026-0007", "Acme, Inc.", "2026-03-14", "$210.01", "pending"}, rows[1])
}

func TestExportDocument_CSVNeutralizesFormulas(t *testing.T) {
	d := sampleInvoice()
	d.Items[0].Description = "=HYPERLINK(\"http://x.test\")"
	d.Customer.Name = "@SUM(A1:A9)"
	file, err := NewExporter("Shop").ExportDocument(entities.ExportFormatCSV, d)
	require.NoError(t, err)

	rows := readCSV(t, file.Content)
	assert.Equal(t, `'=HYPERLINK("http://x.test")`, rows[1][0])
	assert.Equal(t, "$55.00", rows[1][3])

	list, err := NewExporter("Shop").ExportList(entities.ExportFormatCSV, entities.DocumentKindInvoice, []entities.Document{d})
	require.NoError(t, err)
	rows = readCSV(t, list.Content)
	assert.Equal(t, "'@SUM(A1:A9)", rows[1][1])
}

func TestExportDocument_PDF(t *testing.T) {
	for _, simplified := range []bool{false, true} {
		d := sampleInvoice()
		d.Simplified = simplified
		d.ProposalLetter = "Dear customer,\nplease find our offer below."

		file, err := NewExporter("Shop").ExportDocument(entities.ExportFormatPDF, d)
		if err != nil {
			t.Fatalf("ExportDocument(pdf, simplified=%v) error = %v", simplified, err)
		}
		if !bytes.HasPrefix(file.Content, []byte("%PDF-")) {
			t.Errorf("result does not start with PDF header")
		}
		assert.Equal(t, "application/pdf", file.ContentType)
	}
}

func TestExportList_PDFEmpty(t *testing.T) {
	file, err := NewExporter("Shop").ExportList(entities.ExportFormatPDF, entities.DocumentKindQuote, nil)
	require.NoError(t, err)
	assert.Equal(t, "quotes.pdf", file.Filename)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF-")))
}

func TestExportDocument_XLSX(t *testing.T) {
	d := sampleInvoice()
	d.Items[0].Description = "=SUM(A1:A2)"

	file, err := NewExporter("Shop").ExportDocument(entities.ExportFormatXLSX, d)
	require.NoError(t, err)
	assert.Equal(t, "I-2026-0007.xlsx", file.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Equal(t, []string{"I-2026-0007"}, sheets)

	get := func(cell string) string {
		v, err := f.GetCellValue(sheets[0], cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Shop", get("A1"))
	assert.Equal(t, "Description", get("A6"))
	assert.Equal(t, "'=SUM(A1:A2)", get("A7"))
	assert.Equal(t, "$100.01", get("E8"))
	assert.Equal(t, "Total", get("A12"))
	assert.Equal(t, "$210.01", get("E12"))
}

func TestExportList_XLSX(t *testing.T) {
	file, err := NewExporter("Shop").ExportList(entities.ExportFormatXLSX, entities.DocumentKindInvoice, []entities.Document{sampleInvoice()})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Invoices", "B5")
	require.NoError(t, err)
	assert.Equal(t, "Acme, Inc.", v)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	_, err := NewExporter("Shop").ExportDocument("doc", sampleInvoice())
	assert.Error(t, err)
	_, err = NewExporter("Shop").ExportList("doc", entities.DocumentKindQuote, nil)
	assert.Error(t, err)
}

func TestSanitizeCell(t *testing.T) {
	for in, want := range map[string]string{
		"":        "",
		"plain":   "plain",
		"=1+1":    "'=1+1",
		"@cmd":    "'@cmd",
		"-2":      "'-2",
		"$210.01": "$210.01",
	} {
		assert.Equal(t, want, sanitizeCell(in), in)
	}
}

func TestDocumentFilenameFallsBackToID(t *testing.T) {
	d := sampleInvoice()
	d.Number = ""
	assert.True(t, strings.HasPrefix(documentFilename(d), "invoice-doc-1"))
}
