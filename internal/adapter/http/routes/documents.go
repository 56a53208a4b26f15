package routes

import (
	"github.com/gin-gonic/gin"

	"business_manager/internal/adapter/http/handlers"
)

const PathDocuments = "/documents"

func addDocumentRoutes(rg *gin.RouterGroup, h *handlers.DocumentHandler) {
	documents := rg.Group(PathDocuments)
	{
		documents.GET("", h.ListDocuments)
		documents.GET("/export", h.ExportList)
		documents.GET("/:id", h.GetDocument)
		documents.PUT("/:id", h.UpdateDocument)
		documents.DELETE("/:id", h.DeleteDocument)
		documents.PATCH("/:id/status", h.UpdateStatus)
		documents.POST("/:id/invoice", h.ConvertToInvoice)
		documents.GET("/:id/export", h.ExportDocument)
	}
}
