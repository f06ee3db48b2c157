package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finflow/family_finance_app/internal/apperrors"
	portssvc "github.com/finflow/family_finance_app/internal/core/ports/services"
	"github.com/finflow/family_finance_app/internal/dto"
	"github.com/finflow/family_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cardHandler handles HTTP requests related to cards and their embedded
// transaction lists.
type cardHandler struct {
	cardService portssvc.CardSvcFacade
}

func newCardHandler(cs portssvc.CardSvcFacade) *cardHandler {
	return &cardHandler{cardService: cs}
}

// registerCardRoutes registers routes related to cards.
func registerCardRoutes(rg *gin.RouterGroup, cardService portssvc.CardSvcFacade) {
	h := newCardHandler(cardService)

	cards := rg.Group("/cards")
	{
		cards.POST("", h.createCard)
		cards.GET("", h.listCards)
		cards.POST("/:card_id/transactions", h.addCardTransaction)
	}
}

// createCard godoc
// @Summary Create a card
// @Description Creates a new card for the authenticated user.
// @Tags cards
// @Accept json
// @Produce json
// @Param card body dto.CreateCardRequest true "Card details"
// @Success 201 {object} dto.CardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /cards [post]
func (h *cardHandler) createCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to create card", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create card"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

// listCards godoc
// @Summary List cards
// @Description Lists all cards belonging to the authenticated user, with their embedded transactions.
// @Tags cards
// @Produce json
// @Success 200 {array} dto.CardResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /cards [get]
func (h *cardHandler) listCards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	cards, err := h.cardService.ListCards(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list cards", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list cards"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCardResponse(cards))
}

// addCardTransaction godoc
// @Summary Append a card transaction
// @Description Appends one entry to a card's embedded transaction list.
// @Tags cards
// @Accept json
// @Produce json
// @Param card_id path string true "Card ID"
// @Param transaction body dto.CreateCardTransactionRequest true "Transaction details"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cards/{card_id}/transactions [post]
func (h *cardHandler) addCardTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateCardTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	cardID := c.Param("card_id")
	if err := h.cardService.AddCardTransaction(c.Request.Context(), cardID, req, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Card not found"})
			return
		}
		logger.Error("Failed to append card transaction", slog.String("error", err.Error()), slog.String("card_id", cardID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to append card transaction"})
		return
	}

	c.Status(http.StatusNoContent)
}
