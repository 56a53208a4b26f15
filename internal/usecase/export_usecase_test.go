package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"business_manager/internal/domain/entities"
	"business_manager/internal/domain/pricing"
	mock_interfaces "business_manager/internal/usecase/interfaces/mocks"
)

func TestExportUseCase_ExportDocument(t *testing.T) {
	t.Run("invalid format", func(t *testing.T) {
		uc := NewExportUseCase(nil, nil, zerolog.Nop())
		if _, err := uc.ExportDocument(context.Background(), "q-1", "docx"); !errors.Is(err, ErrInvalidExportFormat) {
			t.Fatalf("expected ErrInvalidExportFormat, got %v", err)
		}
	})

	t.Run("document not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		exporter := mock_interfaces.NewMockIDocumentExporter(ctrl)
		uc := NewExportUseCase(newTestDocumentUseCase(repo, pricing.RebaseFromTotal), exporter, zerolog.Nop())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Document{}, nil)
		if _, err := uc.ExportDocument(context.Background(), "q-1", entities.ExportFormatPDF); !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		exporter := mock_interfaces.NewMockIDocumentExporter(ctrl)
		uc := NewExportUseCase(newTestDocumentUseCase(repo, pricing.RebaseFromTotal), exporter, zerolog.Nop())

		quote := acceptedQuote()
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		exporter.EXPECT().ExportDocument(entities.ExportFormatCSV, quote).Return(entities.ExportFile{Filename: "Q-2026-0007.csv", Content: []byte("x")}, nil)

		file, err := uc.ExportDocument(context.Background(), "q-1", entities.ExportFormatCSV)
		if err != nil || file.Filename != "Q-2026-0007.csv" {
			t.Fatalf("unexpected export result %+v %v", file, err)
		}
	})
}

func TestExportUseCase_ExportList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
	exporter := mock_interfaces.NewMockIDocumentExporter(ctrl)
	uc := NewExportUseCase(newTestDocumentUseCase(repo, pricing.RebaseFromTotal), exporter, zerolog.Nop())

	docs := []entities.Document{{ID: "i-1"}}
	repo.EXPECT().ListByKind(gomock.Any(), entities.DocumentKindInvoice).Return(docs, nil)
	exporter.EXPECT().ExportList(entities.ExportFormatXLSX, entities.DocumentKindInvoice, docs).Return(entities.ExportFile{}, errors.New("render"))

	if _, err := uc.ExportList(context.Background(), entities.DocumentKindInvoice, entities.ExportFormatXLSX); err == nil || err.Error() != "render" {
		t.Fatalf("expected render error, got %v", err)
	}
}
