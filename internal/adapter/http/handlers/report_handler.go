package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	request "business_manager/internal/adapter/http/dto/request"
	response "business_manager/internal/adapter/http/dto/response"
	"business_manager/internal/usecase"
	"business_manager/pkg"
)

// ReportHandler serves the weekly and monthly business summaries.
type ReportHandler struct {
	reports usecase.IReportUseCase
	now     func() time.Time
	logger  zerolog.Logger
}

func NewReportHandler(reports usecase.IReportUseCase, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger,
	}
}

// GetReport godoc
// @Summary  Revenue, quote and customer figures for a week or month
// @Tags     reports
// @Produce  json
// @Param    period  query     string  false  "weekly (default) or monthly"
// @Param    date    query     string  false  "Any day in the period, YYYY-MM-DD; defaults to today"
// @Success  200     {object}  response.ReportResponse
// @Failure  400     {object}  pkg.HTTPError
// @Router   /reports [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	period, ref, err := q.ToParams(h.now())
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}

	report, err := h.reports.Summary(c.Request.Context(), period, ref)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidReportPeriod) {
			writeError(c, pkg.NewDomainErrorSimple("INVALID_REPORT_PERIOD", "Period must be weekly or monthly", http.StatusBadRequest))
			return
		}
		h.logger.Error().Err(err).Msg("report failed")
		writeError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}
