package routes

import (
	"github.com/gin-gonic/gin"

	"business_manager/internal/adapter/http/handlers"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:invoice_id", h.PayInvoice)
		payments.GET("/:invoice_id", h.GetLatestPayment)
		payments.GET("/:invoice_id/history", h.ListPayments)
		payments.GET("/:invoice_id/:payment_id", h.GetPayment)
	}
}
