package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/finflow/family_finance_app/internal/apperrors"
	portssvc "github.com/finflow/family_finance_app/internal/core/ports/services"
	"github.com/finflow/family_finance_app/internal/dto"
	"github.com/finflow/family_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// obligationHandler handles HTTP requests related to scheduled obligations.
type obligationHandler struct {
	obligationService portssvc.ObligationSvcFacade
}

func newObligationHandler(os portssvc.ObligationSvcFacade) *obligationHandler {
	return &obligationHandler{obligationService: os}
}

// registerObligationRoutes registers routes related to scheduled obligations.
func registerObligationRoutes(rg *gin.RouterGroup, obligationService portssvc.ObligationSvcFacade) {
	h := newObligationHandler(obligationService)

	obligations := rg.Group("/obligations")
	{
		obligations.POST("", h.createObligation)
		obligations.GET("", h.listObligations)
		obligations.PUT("/:obligation_id", h.updateObligation)
		obligations.DELETE("/:obligation_id", h.deleteObligation)
	}
}

// createObligation godoc
// @Summary Create a scheduled obligation
// @Description Creates a new scheduled obligation tied to an account by account number.
// @Tags obligations
// @Accept json
// @Produce json
// @Param obligation body dto.CreateObligationRequest true "Obligation details"
// @Success 201 {object} dto.ObligationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /obligations [post]
func (h *obligationHandler) createObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	obligation, err := h.obligationService.CreateObligation(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create obligation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create obligation"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToObligationResponse(obligation))
}

// listObligations godoc
// @Summary List scheduled obligations
// @Description Lists the user's scheduled obligations. Pass activeOnly=true to restrict to active ones.
// @Tags obligations
// @Produce json
// @Param activeOnly query bool false "Only active obligations" default(false)
// @Success 200 {array} dto.ObligationResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /obligations [get]
func (h *obligationHandler) listObligations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("activeOnly", "false"))

	obligations, err := h.obligationService.ListObligations(c.Request.Context(), userID, activeOnly)
	if err != nil {
		logger.Error("Failed to list obligations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list obligations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListObligationResponse(obligations))
}

// updateObligation godoc
// @Summary Update a scheduled obligation
// @Description Updates fields of an obligation owned by the authenticated user.
// @Tags obligations
// @Accept json
// @Produce json
// @Param obligation_id path string true "Obligation ID"
// @Param obligation body dto.UpdateObligationRequest true "Fields to update"
// @Success 200 {object} dto.ObligationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /obligations/{obligation_id} [put]
func (h *obligationHandler) updateObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	obligationID := c.Param("obligation_id")
	obligation, err := h.obligationService.UpdateObligation(c.Request.Context(), obligationID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Obligation not found"})
			return
		}
		logger.Error("Failed to update obligation", slog.String("error", err.Error()), slog.String("obligation_id", obligationID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update obligation"})
		return
	}

	c.JSON(http.StatusOK, dto.ToObligationResponse(obligation))
}

// deleteObligation godoc
// @Summary Delete a scheduled obligation
// @Description Deletes an obligation owned by the authenticated user.
// @Tags obligations
// @Produce json
// @Param obligation_id path string true "Obligation ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /obligations/{obligation_id} [delete]
func (h *obligationHandler) deleteObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	obligationID := c.Param("obligation_id")
	if err := h.obligationService.DeleteObligation(c.Request.Context(), obligationID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Obligation not found"})
			return
		}
		logger.Error("Failed to delete obligation", slog.String("error", err.Error()), slog.String("obligation_id", obligationID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete obligation"})
		return
	}

	c.Status(http.StatusNoContent)
}
