package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_finance_app/internal/dto"
	"github.com/SscSPs/pocket_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expense entries.
type expenseHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(ls portssvc.LedgerSvcFacade) *expenseHandler {
	return &expenseHandler{ledgerService: ls}
}

// registerExpenseRoutes registers routes related to expense entries.
func registerExpenseRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newExpenseHandler(ledgerService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Add an expense entry
// @Description Validates and records a new expense entry for the authenticated account
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.Envelope{data=dto.ExpenseResponse}
// @Failure 400 {object} dto.Envelope "Invalid input format or validation error"
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to add expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
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

	expense, err := h.ledgerService.AddExpense(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, logger, "add expense", err)
		return
	}

	logger.Info("Expense added", slog.String("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToExpenseResponse(expense)))
}

// listExpenses godoc
// @Summary List expense entries
// @Description Returns all expense entries for the authenticated account, newest first
// @Tags expenses
// @Produce  json
// @Success 200 {object} dto.Envelope{data=[]dto.ExpenseResponse}
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to list expenses"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	expenses, err := h.ledgerService.ListExpenses(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, "list expenses", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToExpenseResponses(expenses)))
}

// deleteExpense godoc
// @Summary Delete an expense entry
// @Description Removes an expense entry permanently
// @Tags expenses
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 404 {object} dto.Envelope "Expense not found"
// @Failure 500 {object} dto.Envelope "Failed to delete expense"
// @Security BearerAuth
// @Router /expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	expenseID := c.Param("expenseID")
	if err := h.ledgerService.DeleteExpense(c.Request.Context(), accountID, expenseID); err != nil {
		respondError(c, logger, "delete expense", err)
		return
	}

	logger.Info("Expense deleted", slog.String("expense_id", expenseID))
	c.JSON(http.StatusOK, dto.OK(nil))
}
