package routes

import (
	"github.com/gin-gonic/gin"

	"business_manager/internal/adapter/http/handlers"
)

const (
	PathParts = "/parts"
	PathLabor = "/labor"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	parts := rg.Group(PathParts)
	{
		parts.POST("", h.CreatePart)
		parts.GET("", h.ListParts)
		parts.GET("/brands", h.ListBrands)
		parts.GET("/categories", h.ListCategories)
		parts.POST("/import", h.ImportParts)
		parts.GET("/:id", h.GetPart)
		parts.PUT("/:id", h.UpdatePart)
		parts.DELETE("/:id", h.DeletePart)
	}

	labor := rg.Group(PathLabor)
	{
		labor.POST("", h.CreateLaborRate)
		labor.GET("", h.ListLaborRates)
		labor.POST("/import", h.ImportLaborRates)
		labor.GET("/:id", h.GetLaborRate)
		labor.PUT("/:id", h.UpdateLaborRate)
		labor.DELETE("/:id", h.DeleteLaborRate)
	}
}
