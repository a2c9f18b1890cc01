package handlers

import (
	"net/http"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_finance_app/internal/dto"
	"github.com/SscSPs/pocket_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// analyticsHandler handles dashboard, chart and suggestion requests.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

// newAnalyticsHandler creates a new analyticsHandler.
func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade) *analyticsHandler {
	return &analyticsHandler{analyticsService: as}
}

// registerAnalyticsRoutes registers routes for derived read models.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(analyticsService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/dashboard", h.dashboard)
		analytics.GET("/charts", h.chartSeries)
		analytics.GET("/categories", h.categoryBreakdown)
		analytics.GET("/suggestions", h.suggestions)
	}
}

// chartPeriodParam reads the period query param, defaulting to month.
func chartPeriodParam(c *gin.Context) domain.ChartPeriod {
	return domain.ChartPeriod(c.DefaultQuery("period", string(domain.PeriodMonth)))
}

// dashboard godoc
// @Summary Account dashboard
// @Description Computes the full-history balance, totals, unread notification count and category split
// @Tags analytics
// @Produce  json
// @Success 200 {object} dto.Envelope{data=dto.DashboardResponse}
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to compute dashboard"
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *analyticsHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	summary, err := h.analyticsService.Dashboard(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, "compute dashboard", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToDashboardResponse(summary)))
}

// chartSeries godoc
// @Summary Chart series
// @Description Buckets income and expense sums into calendar-aligned buckets for the given period
// @Tags analytics
// @Produce  json
// @Param   period query string false "Chart period (week, month or year)" default(month)
// @Success 200 {object} dto.Envelope{data=dto.ChartSeriesResponse}
// @Failure 400 {object} dto.Envelope "Unknown period"
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to compute chart series"
// @Security BearerAuth
// @Router /analytics/charts [get]
func (h *analyticsHandler) chartSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	series, err := h.analyticsService.ChartSeries(c.Request.Context(), accountID, chartPeriodParam(c))
	if err != nil {
		respondError(c, logger, "compute chart series", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToChartSeriesResponse(series)))
}

// categoryBreakdown godoc
// @Summary Expense category breakdown
// @Description Groups expenses by category within the selected period, sorted by descending amount
// @Tags analytics
// @Produce  json
// @Param   period query string false "Chart period (week, month or year)" default(month)
// @Success 200 {object} dto.Envelope{data=[]dto.CategoryAmountResponse}
// @Failure 400 {object} dto.Envelope "Unknown period"
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to compute category breakdown"
// @Security BearerAuth
// @Router /analytics/categories [get]
func (h *analyticsHandler) categoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	breakdown, err := h.analyticsService.CategoryBreakdown(c.Request.Context(), accountID, chartPeriodParam(c))
	if err != nil {
		respondError(c, logger, "compute category breakdown", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCategoryBreakdownResponse(breakdown)))
}

// suggestions godoc
// @Summary Financial suggestions
// @Description Evaluates the advisory rules against the latest ledger and loan aggregates
// @Tags analytics
// @Produce  json
// @Success 200 {object} dto.Envelope{data=dto.SuggestionsResponse}
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to evaluate suggestions"
// @Security BearerAuth
// @Router /analytics/suggestions [get]
func (h *analyticsHandler) suggestions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	advisories, err := h.analyticsService.Suggestions(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, "evaluate suggestions", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.SuggestionsResponse{Suggestions: advisories}))
}
