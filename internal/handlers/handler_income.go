package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_finance_app/internal/dto"
	"github.com/SscSPs/pocket_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// incomeHandler handles HTTP requests related to income entries.
type incomeHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newIncomeHandler creates a new incomeHandler.
func newIncomeHandler(ls portssvc.LedgerSvcFacade) *incomeHandler {
	return &incomeHandler{ledgerService: ls}
}

// registerIncomeRoutes registers routes related to income entries.
func registerIncomeRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newIncomeHandler(ledgerService)

	incomes := rg.Group("/incomes")
	{
		incomes.POST("", h.createIncome)
		incomes.GET("", h.listIncomes)
		incomes.DELETE("/:incomeID", h.deleteIncome)
	}
}

// createIncome godoc
// @Summary Add an income entry
// @Description Validates and records a new income entry for the authenticated account
// @Tags incomes
// @Accept  json
// @Produce  json
// @Param   income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.Envelope{data=dto.IncomeResponse}
// @Failure 400 {object} dto.Envelope "Invalid input format or validation error"
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to add income"
// @Security BearerAuth
// @Router /incomes [post]
func (h *incomeHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	income, err := h.ledgerService.AddIncome(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, logger, "add income", err)
		return
	}

	logger.Info("Income added", slog.String("income_id", income.IncomeID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToIncomeResponse(income)))
}

// listIncomes godoc
// @Summary List income entries
// @Description Returns all income entries for the authenticated account, newest first
// @Tags incomes
// @Produce  json
// @Success 200 {object} dto.Envelope{data=[]dto.IncomeResponse}
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to list incomes"
// @Security BearerAuth
// @Router /incomes [get]
func (h *incomeHandler) listIncomes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	incomes, err := h.ledgerService.ListIncomes(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, "list incomes", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToIncomeResponses(incomes)))
}

// deleteIncome godoc
// @Summary Delete an income entry
// @Description Removes an income entry permanently
// @Tags incomes
// @Produce  json
// @Param   incomeID path string true "Income ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 404 {object} dto.Envelope "Income not found"
// @Failure 500 {object} dto.Envelope "Failed to delete income"
// @Security BearerAuth
// @Router /incomes/{incomeID} [delete]
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	incomeID := c.Param("incomeID")
	if err := h.ledgerService.DeleteIncome(c.Request.Context(), accountID, incomeID); err != nil {
		respondError(c, logger, "delete income", err)
		return
	}

	logger.Info("Income deleted", slog.String("income_id", incomeID))
	c.JSON(http.StatusOK, dto.OK(nil))
}
