package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"business_manager/internal/domain/entities"
	"business_manager/internal/usecase/interfaces"
)

var ErrInvalidExportFormat = errors.New("invalid export format")

type IExportUseCase interface {
	ExportDocument(ctx context.Context, id string, format entities.ExportFormat) (entities.ExportFile, error)
	ExportList(ctx context.Context, kind entities.DocumentKind, format entities.ExportFormat) (entities.ExportFile, error)
}

type ExportUseCase struct {
	documents IDocumentUseCase
	exporter  interfaces.IDocumentExporter
	logger    zerolog.Logger
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(documents IDocumentUseCase, exporter interfaces.IDocumentExporter, logger zerolog.Logger) *ExportUseCase {
	return &ExportUseCase{documents: documents, exporter: exporter, logger: logger}
}

func (u *ExportUseCase) ExportDocument(ctx context.Context, id string, format entities.ExportFormat) (entities.ExportFile, error) {
	if _, ok := entities.ParseExportFormat(string(format)); !ok {
		return entities.ExportFile{}, ErrInvalidExportFormat
	}
	doc, err := u.documents.GetByID(ctx, id)
	if err != nil {
		return entities.ExportFile{}, err
	}
	file, err := u.exporter.ExportDocument(format, doc)
	if err != nil {
		u.logger.Error().Err(err).Str("document_id", doc.ID).Str("format", string(format)).Msg("export document failed")
		return entities.ExportFile{}, err
	}
	u.logger.Info().Str("document_id", doc.ID).Str("format", string(format)).Int("bytes", len(file.Content)).Msg("document exported")
	return file, nil
}

func (u *ExportUseCase) ExportList(ctx context.Context, kind entities.DocumentKind, format entities.ExportFormat) (entities.ExportFile, error) {
	if _, ok := entities.ParseExportFormat(string(format)); !ok {
		return entities.ExportFile{}, ErrInvalidExportFormat
	}
	docs, err := u.documents.ListByKind(ctx, kind)
	if err != nil {
		return entities.ExportFile{}, err
	}
	file, err := u.exporter.ExportList(format, kind, docs)
	if err != nil {
		u.logger.Error().Err(err).Str("kind", string(kind)).Str("format", string(format)).Msg("export list failed")
		return entities.ExportFile{}, err
	}
	u.logger.Info().Str("kind", string(kind)).Str("format", string(format)).Int("documents", len(docs)).Msg("document list exported")
	return file, nil
}
