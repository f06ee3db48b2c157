package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finflow/family_finance_app/internal/core/ports/services"
	"github.com/finflow/family_finance_app/internal/dto"
	"github.com/finflow/family_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashflowHandler handles HTTP requests for the cash-flow analysis and the
// period income/expense summaries. All three endpoints are pure reads.
type cashflowHandler struct {
	cashflowService portssvc.CashflowSvcFacade
}

func newCashflowHandler(cs portssvc.CashflowSvcFacade) *cashflowHandler {
	return &cashflowHandler{cashflowService: cs}
}

// registerCashflowRoutes registers the analysis and summary routes.
func registerCashflowRoutes(rg *gin.RouterGroup, cashflowService portssvc.CashflowSvcFacade) {
	h := newCashflowHandler(cashflowService)

	cashflow := rg.Group("/cashflow")
	{
		cashflow.GET("/analysis", h.getAnalysis)
		cashflow.GET("/income/last-month", h.getLastMonthIncome)
		cashflow.GET("/expenses/summary", h.getExpenseSummary)
	}
}

// getAnalysis godoc
// @Summary Run the cash-flow analysis
// @Description Reconstructs each account's effective balance, normalizes active obligations into monthly equivalents, classifies every account and suggests safe inter-account transfers. Nothing is persisted; every call recomputes from the current ledger.
// @Tags cashflow
// @Produce json
// @Success 200 {object} dto.CashflowAnalysisResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} map[string]interface{} "success=false with an error message"
// @Security BearerAuth
// @Router /cashflow/analysis [get]
func (h *cashflowHandler) getAnalysis(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	analysis, err := h.cashflowService.AnalyzeCashflow(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Cash-flow analysis failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to analyze cashflow"})
		return
	}

	logger.Info("Cash-flow analysis completed",
		slog.Int("banks", analysis.Summary.TotalBanks),
		slog.Int("suggestions", len(analysis.Suggestions)))
	c.JSON(http.StatusOK, dto.ToCashflowAnalysisResponse(analysis))
}

// getLastMonthIncome godoc
// @Summary Total last month's income
// @Description Sums income for the previous calendar month across records, bank deposits (internal transfers excluded) and cash entries.
// @Tags cashflow
// @Produce json
// @Success 200 {object} dto.IncomeSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} map[string]interface{} "success=false with an error message"
// @Security BearerAuth
// @Router /cashflow/income/last-month [get]
func (h *cashflowHandler) getLastMonthIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.cashflowService.LastMonthIncome(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Income summary failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to summarize income"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeSummaryResponse(summary))
}

// getExpenseSummary godoc
// @Summary Total last month's and current month's expenses
// @Description Sums expenses for the previous calendar month across records, bank withdrawals, cash entries and card sub-lists, plus a current-month-to-date total.
// @Tags cashflow
// @Produce json
// @Success 200 {object} dto.ExpenseSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} map[string]interface{} "success=false with an error message"
// @Security BearerAuth
// @Router /cashflow/expenses/summary [get]
func (h *cashflowHandler) getExpenseSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.cashflowService.ExpenseSummary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Expense summary failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to summarize expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseSummaryResponse(summary))
}
