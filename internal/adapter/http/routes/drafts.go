package routes

import (
	"github.com/gin-gonic/gin"

	"business_manager/internal/adapter/http/handlers"
)

const PathDrafts = "/drafts"

func addDraftRoutes(rg *gin.RouterGroup, h *handlers.DraftHandler) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", h.OpenDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.DELETE("/:id", h.DiscardDraft)
		drafts.POST("/:id/parts", h.AddPart)
		drafts.POST("/:id/labor", h.AddLabor)
		drafts.PATCH("/:id/items/:item_id", h.UpdateItem)
		drafts.DELETE("/:id/items/:item_id", h.RemoveItem)
		drafts.PATCH("/:id/markup", h.SetMarkup)
		drafts.POST("/:id/load", h.LoadFromDocument)
		drafts.POST("/:id/submit", h.SubmitDraft)
	}
}
