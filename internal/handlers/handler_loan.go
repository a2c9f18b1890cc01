package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_finance_app/internal/dto"
	"github.com/SscSPs/pocket_finance_app/internal/middleware"
	"github.com/SscSPs/pocket_finance_app/internal/utils/dates"
	"github.com/gin-gonic/gin"
)

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

// newLoanHandler creates a new loanHandler.
func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.POST("", h.createLoan)
		loans.GET("", h.listLoans)
		loans.GET("/stats", h.loanStats)
		loans.GET("/:loanID", h.getLoan)
		loans.PUT("/:loanID/status", h.updateLoanStatus)
		loans.DELETE("/:loanID", h.deleteLoan)
	}
}

// createLoan godoc
// @Summary Create a loan
// @Description Records a lending or borrowing loan with direction-specific details
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.Envelope{data=dto.LoanResponse}
// @Failure 400 {object} dto.Envelope "Invalid input format or validation error"
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to create loan"
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLoanRequest
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

	loan, err := h.loanService.AddLoan(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, logger, "create loan", err)
		return
	}

	logger.Info("Loan created", slog.String("loan_id", loan.LoanID), slog.String("direction", string(loan.Direction)))
	c.JSON(http.StatusCreated, dto.OK(dto.ToLoanResponse(loan, dates.Today())))
}

// listLoans godoc
// @Summary List loans
// @Description Returns loans for the authenticated account, optionally filtered by direction and status
// @Tags loans
// @Produce  json
// @Param   direction query string false "Filter by direction (lending or borrowing)"
// @Param   status query string false "Filter by stored status (pending or paid)"
// @Success 200 {object} dto.Envelope{data=[]dto.LoanResponse}
// @Failure 400 {object} dto.Envelope "Invalid filter value"
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to list loans"
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListLoansParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	loans, err := h.loanService.ListLoans(c.Request.Context(), accountID, params)
	if err != nil {
		respondError(c, logger, "list loans", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToLoanResponses(loans, dates.Today())))
}

// loanStats godoc
// @Summary Loan book statistics
// @Description Aggregates totals lent, borrowed, receivable and repayable plus status counts
// @Tags loans
// @Produce  json
// @Success 200 {object} dto.Envelope{data=dto.LoanStatsResponse}
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to compute loan stats"
// @Security BearerAuth
// @Router /loans/stats [get]
func (h *loanHandler) loanStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	stats, err := h.loanService.Stats(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, "compute loan stats", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToLoanStatsResponse(stats)))
}

// getLoan godoc
// @Summary Get a loan
// @Description Retrieves a single loan by ID
// @Tags loans
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Success 200 {object} dto.Envelope{data=dto.LoanResponse}
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 404 {object} dto.Envelope "Loan not found"
// @Failure 500 {object} dto.Envelope "Failed to get loan"
// @Security BearerAuth
// @Router /loans/{loanID} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	loan, err := h.loanService.GetLoan(c.Request.Context(), accountID, c.Param("loanID"))
	if err != nil {
		respondError(c, logger, "get loan", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToLoanResponse(loan, dates.Today())))
}

// updateLoanStatus godoc
// @Summary Update loan status
// @Description Transitions a loan between pending and paid; paid stamps the paid date, pending clears it
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Param   status body dto.UpdateLoanStatusRequest true "Target status"
// @Success 200 {object} dto.Envelope{data=dto.LoanResponse}
// @Failure 400 {object} dto.Envelope "Invalid input format"
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 404 {object} dto.Envelope "Loan not found"
// @Failure 409 {object} dto.Envelope "Status not storable"
// @Failure 500 {object} dto.Envelope "Failed to update loan status"
// @Security BearerAuth
// @Router /loans/{loanID}/status [put]
func (h *loanHandler) updateLoanStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateLoanStatusRequest
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

	loanID := c.Param("loanID")
	loan, err := h.loanService.UpdateStatus(c.Request.Context(), accountID, loanID, req.Status)
	if err != nil {
		respondError(c, logger, "update loan status", err)
		return
	}

	logger.Info("Loan status updated", slog.String("loan_id", loanID), slog.String("status", string(loan.Status)))
	c.JSON(http.StatusOK, dto.OK(dto.ToLoanResponse(loan, dates.Today())))
}

// deleteLoan godoc
// @Summary Delete a loan
// @Description Removes a loan permanently; notifications referencing it are kept
// @Tags loans
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 404 {object} dto.Envelope "Loan not found"
// @Failure 500 {object} dto.Envelope "Failed to delete loan"
// @Security BearerAuth
// @Router /loans/{loanID} [delete]
func (h *loanHandler) deleteLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return
	}

	loanID := c.Param("loanID")
	if err := h.loanService.DeleteLoan(c.Request.Context(), accountID, loanID); err != nil {
		respondError(c, logger, "delete loan", err)
		return
	}

	logger.Info("Loan deleted", slog.String("loan_id", loanID))
	c.JSON(http.StatusOK, dto.OK(nil))
}
