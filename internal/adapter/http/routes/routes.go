package routes

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "business_manager/docs"
	"business_manager/internal/adapter/export"
	"business_manager/internal/adapter/http/handlers"
	"business_manager/internal/adapter/persistence/memory"
	"business_manager/internal/adapter/persistence/repository"
	"business_manager/internal/config"
	"business_manager/internal/infrastructure/database"
	"business_manager/internal/infrastructure/logging"
	"business_manager/internal/infrastructure/payments"
	"business_manager/internal/usecase"
	"business_manager/internal/usecase/interfaces"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Catalog   *handlers.CatalogHandler
	Drafts    *handlers.DraftHandler
	Documents *handlers.DocumentHandler
	Payments  *handlers.BillingPaymentHandler
	Customers *handlers.CustomerHandler
	Reports   *handlers.ReportHandler
}

// Run wires the application and blocks serving HTTP.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	h, err := buildHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(h, logger)

	logger.Info().Str("addr", cfg.HTTPAddr()).Msg("starting http server")
	if err := router.Run(cfg.HTTPAddr()); err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}
	return nil
}

// NewRouter mounts the middlewares, swagger and every /v1 route.
func NewRouter(h Handlers, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(logging.RequestLogger(logger))
	router.Use(logging.Recovery(logger))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addDraftRoutes(v1, h.Drafts)
	addDocumentRoutes(v1, h.Documents)
	addPaymentRoutes(v1, h.Payments)
	addCustomerRoutes(v1, h.Customers)
	addReportRoutes(v1, h.Reports)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg, logger)
	if err != nil {
		return Handlers{}, err
	}

	documentRepo := repository.NewDocumentDynamoRepository(ddb, cfg.DocumentsTable)
	partRepo := repository.NewPartDynamoRepository(ddb, cfg.PartsTable)
	laborRepo := repository.NewLaborRateDynamoRepository(ddb, cfg.LaborTable)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.PaymentsTable)
	customerRepo := repository.NewCustomerDynamoRepository(ddb, cfg.CustomersTable)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("mercado pago gateway not configured, invoice payments are disabled")
	} else {
		gateway = mpGateway
	}

	catalogUseCase := usecase.NewCatalogUseCase(partRepo, laborRepo, logging.Component(logger, "catalog", "usecase"))
	documentUseCase := usecase.NewDocumentUseCase(documentRepo, usecase.DocumentSettings{
		RebaseMode:        cfg.InvoiceMarkupRebase,
		QuoteValidityDays: cfg.QuoteValidityDays,
		InvoiceDueDays:    cfg.InvoiceDueDays,
	}, logging.Component(logger, "documents", "usecase"))
	draftStore := memory.NewDraftStore()
	draftStore.StartJanitor(ctx, cfg.DraftSweepInterval, cfg.DraftIdleTTL, logging.Component(logger, "drafts", "store"))
	draftUseCase := usecase.NewDraftUseCase(draftStore, catalogUseCase, documentUseCase, cfg.InvoiceMarkupRebase, logging.Component(logger, "drafts", "usecase"))
	exportUseCase := usecase.NewExportUseCase(documentUseCase, export.NewExporter(cfg.CompanyName), logging.Component(logger, "export", "usecase"))
	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, documentRepo, gateway, usecase.PaymentSettings{
		SandboxPayerEmail: cfg.TestPayerEmail,
	}, logging.Component(logger, "payments", "usecase"))
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, documentRepo, logging.Component(logger, "customers", "usecase"))
	reportUseCase := usecase.NewReportUseCase(documentRepo, customerRepo, logging.Component(logger, "reports", "usecase"))

	return Handlers{
		Catalog:   handlers.NewCatalogHandler(catalogUseCase),
		Drafts:    handlers.NewDraftHandler(draftUseCase, logging.Component(logger, "drafts", "handler")),
		Documents: handlers.NewDocumentHandler(documentUseCase, exportUseCase, logging.Component(logger, "documents", "handler")),
		Payments:  handlers.NewBillingPaymentHandler(paymentUseCase, logging.Component(logger, "payments", "handler")),
		Customers: handlers.NewCustomerHandler(customerUseCase, logging.Component(logger, "customers", "handler")),
		Reports:   handlers.NewReportHandler(reportUseCase, logging.Component(logger, "reports", "handler")),
	}, nil
}
