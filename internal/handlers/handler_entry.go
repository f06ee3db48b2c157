package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finflow/family_finance_app/internal/core/ports/services"
	"github.com/finflow/family_finance_app/internal/dto"
	"github.com/finflow/family_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests for cash entries and structured
// income/expense records, which share their request shape.
type entryHandler struct {
	cashEntryService portssvc.CashEntrySvcFacade
	recordService    portssvc.RecordSvcFacade
}

func newEntryHandler(ces portssvc.CashEntrySvcFacade, rs portssvc.RecordSvcFacade) *entryHandler {
	return &entryHandler{
		cashEntryService: ces,
		recordService:    rs,
	}
}

// registerEntryRoutes registers routes for cash entries and records.
func registerEntryRoutes(rg *gin.RouterGroup, cashEntryService portssvc.CashEntrySvcFacade, recordService portssvc.RecordSvcFacade) {
	h := newEntryHandler(cashEntryService, recordService)

	cash := rg.Group("/cash-entries")
	{
		cash.POST("", h.createCashEntry)
		cash.GET("", h.listCashEntries)
	}

	records := rg.Group("/records")
	{
		records.POST("", h.createRecord)
		records.GET("", h.listRecords)
	}
}

// createCashEntry godoc
// @Summary Create a cash entry
// @Description Records a cash movement outside any bank account.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.CashEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-entries [post]
func (h *entryHandler) createCashEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.cashEntryService.CreateCashEntry(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to create cash entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create cash entry"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashEntryResponse(entry))
}

// listCashEntries godoc
// @Summary List cash entries
// @Description Lists all cash entries belonging to the authenticated user.
// @Tags entries
// @Produce json
// @Success 200 {array} dto.CashEntryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-entries [get]
func (h *entryHandler) listCashEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.cashEntryService.ListCashEntries(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list cash entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list cash entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCashEntryResponse(entries))
}

// createRecord godoc
// @Summary Create an income/expense record
// @Description Records a structured income or expense entry.
// @Tags entries
// @Accept json
// @Produce json
// @Param record body dto.CreateEntryRequest true "Record details"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /records [post]
func (h *entryHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to create record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create record"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// listRecords godoc
// @Summary List income/expense records
// @Description Lists all records belonging to the authenticated user.
// @Tags entries
// @Produce json
// @Success 200 {array} dto.RecordResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /records [get]
func (h *entryHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecordResponse(records))
}
