package routes

import (
	"github.com/gin-gonic/gin"

	"business_manager/internal/adapter/http/handlers"
)

const PathReports = "/reports"

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	rg.GET(PathReports, h.GetReport)
}
