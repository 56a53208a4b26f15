// Package export renders quotes, invoices and proposals as CSV, PDF and
// XLSX files.
package export

import (
	"fmt"
	"strings"
	"time"

	"business_manager/internal/domain/entities"
	"business_manager/internal/domain/pricing"
	"business_manager/internal/usecase/interfaces"
)

const dateLayout = "2006-01-02"

var (
	itemHeader = []string{"Description", "Type", "Quantity", "Unit Price", "Total"}
	listHeader = []string{"Number", "Customer", "Date", "Total Amount", "Status"}
)

// Exporter implements interfaces.IDocumentExporter.
type Exporter struct {
	companyName string
}

var _ interfaces.IDocumentExporter = (*Exporter)(nil)

func NewExporter(companyName string) *Exporter {
	return &Exporter{companyName: companyName}
}

func (e *Exporter) ExportDocument(format entities.ExportFormat, d entities.Document) (entities.ExportFile, error) {
	var (
		content []byte
		err     error
	)
	switch format {
	case entities.ExportFormatCSV:
		content, err = writeCSV(documentTable(d))
	case entities.ExportFormatXLSX:
		content, err = writeDocumentXLSX(e.companyName, d)
	case entities.ExportFormatPDF:
		content, err = writeDocumentPDF(e.companyName, d)
	default:
		return entities.ExportFile{}, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return entities.ExportFile{}, err
	}
	return entities.ExportFile{
		Filename:    documentFilename(d) + "." + string(format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}

func (e *Exporter) ExportList(format entities.ExportFormat, kind entities.DocumentKind, docs []entities.Document) (entities.ExportFile, error) {
	var (
		content []byte
		err     error
	)
	switch format {
	case entities.ExportFormatCSV:
		content, err = writeCSV(listTable(docs))
	case entities.ExportFormatXLSX:
		content, err = writeListXLSX(e.companyName, kind, docs)
	case entities.ExportFormatPDF:
		content, err = writeListPDF(e.companyName, kind, docs)
	default:
		return entities.ExportFile{}, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return entities.ExportFile{}, err
	}
	return entities.ExportFile{
		Filename:    string(kind) + "s." + string(format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}

// documentTable is the tabular form shared by the CSV and XLSX renderers:
// a header, one row per item, then the Parts/Labor/Total summary.
func documentTable(d entities.Document) [][]string {
	rows := make([][]string, 0, len(d.Items)+5)
	rows = append(rows, itemHeader)
	for _, it := range d.Items {
		rows = append(rows, itemRow(it))
	}
	totals := d.Totals()
	rows = append(rows,
		[]string{},
		[]string{"Parts", "", "", "", pricing.FormatUSD(totals.Parts)},
		[]string{"Labor", "", "", "", pricing.FormatUSD(totals.Labor)},
		[]string{"Total", "", "", "", pricing.FormatUSD(d.TotalAmount)},
	)
	return rows
}

func listTable(docs []entities.Document) [][]string {
	rows := make([][]string, 0, len(docs)+1)
	rows = append(rows, listHeader)
	for _, d := range docs {
		rows = append(rows, listRow(d))
	}
	return rows
}

func itemRow(it entities.DocumentItem) []string {
	return []string{
		it.Description,
		itemTypeLabel(it.Kind()),
		it.Quantity.String(),
		pricing.FormatUSD(it.UnitPrice),
		pricing.FormatUSD(it.Total),
	}
}

func listRow(d entities.Document) []string {
	return []string{
		d.Number,
		d.Customer.Name,
		formatDate(d.Date),
		pricing.FormatUSD(d.TotalAmount),
		string(d.Status),
	}
}

func itemTypeLabel(k pricing.Kind) string {
	if k == pricing.KindLabor {
		return "Labor"
	}
	return "Part"
}

func kindLabel(k entities.DocumentKind) string {
	s := string(k)
	if s == "" {
		return "Document"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func documentFilename(d entities.Document) string {
	if d.Number != "" {
		return d.Number
	}
	return string(d.Kind) + "-" + d.ID
}
