package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/steadyday/steadyday/internal/domain/envreport"
	"github.com/steadyday/steadyday/internal/domain/querystats"
	apperrors "github.com/steadyday/steadyday/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	reportSvc envreport.Service
	statsSvc  *querystats.Service
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler. statsSvc may be nil when
// query statistics are disabled.
func NewHandler(reportSvc envreport.Service, statsSvc *querystats.Service, logger *slog.Logger) *Handler {
	return &Handler{
		reportSvc: reportSvc,
		statsSvc:  statsSvc,
		logger:    logger.With("component", "http.handler"),
	}
}

// GenerateReport handles the report generation endpoint.
func (h *Handler) GenerateReport(c *gin.Context) {
	var req envreport.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.reportSvc.Generate(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "report_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	if h.statsSvc != nil {
		h.statsSvc.Record(c.Request.Context(), req.Question)
	}

	c.JSON(http.StatusOK, resp)
}

// TrendingQueries returns the most asked questions.
func (h *Handler) TrendingQueries(c *gin.Context) {
	if h.statsSvc == nil {
		c.JSON(http.StatusOK, gin.H{"queries": []querystats.TrendingQuery{}})
		return
	}
	items, err := h.statsSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "stats_failed", errMessage(err), err))
		return
	}
	if items == nil {
		items = []querystats.TrendingQuery{}
	}
	c.JSON(http.StatusOK, gin.H{"queries": items})
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
