package entities

import "strings"

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ParseExportFormat is case-insensitive and accepts "excel" for xlsx.
func ParseExportFormat(s string) (ExportFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return ExportFormatCSV, true
	case "pdf":
		return ExportFormatPDF, true
	case "xlsx", "excel":
		return ExportFormatXLSX, true
	}
	return "", false
}

func (f ExportFormat) ContentType() string {
	switch f {
	case ExportFormatPDF:
		return "application/pdf"
	case ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}

// ExportFile is a rendered document ready to be downloaded.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
