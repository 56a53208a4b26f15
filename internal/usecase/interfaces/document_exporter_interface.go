package interfaces

import "business_manager/internal/domain/entities"

// IDocumentExporter renders documents into downloadable files.
type IDocumentExporter interface {
	ExportDocument(format entities.ExportFormat, d entities.Document) (entities.ExportFile, error)
	ExportList(format entities.ExportFormat, kind entities.DocumentKind, docs []entities.Document) (entities.ExportFile, error)
}
