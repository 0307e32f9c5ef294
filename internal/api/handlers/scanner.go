package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pupunkorvat/storefront/internal/storefront"
)

// Scanner endpoints are thin passthroughs: ticket state and PIN validity
// are owned by the backend.

type ValidatePinRequest struct {
	EventID string `json:"eventId" binding:"required"`
	Pin     string `json:"pin" binding:"required"`
}

type UseTicketRequest struct {
	Code    string `json:"code" binding:"required"`
	EventID string `json:"eventId" binding:"required"`
}

func respondTicketError(c *gin.Context, err error) {
	if apiErr, ok := storefront.AsError(err); ok {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message, "code": apiErr.Code})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "ticket service unavailable"})
}

func HandleValidatePin(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ValidatePinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		result, err := deps.Client.ValidateTicketPin(c.Request.Context(), req.EventID, req.Pin)
		if err != nil {
			logger.Warn("PIN validation failed", zap.String("eventId", req.EventID), zap.Error(err))
			respondTicketError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func HandleGetTicket(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		ticket, err := deps.Client.GetTicket(c.Request.Context(), code)
		if err != nil {
			respondTicketError(c, err)
			return
		}

		c.JSON(http.StatusOK, ticket)
	}
}

func HandleUseTicket(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UseTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		ticket, err := deps.Client.UseTicket(c.Request.Context(), req.Code, req.EventID)
		if err != nil {
			logger.Warn("Failed to use ticket", zap.String("eventId", req.EventID), zap.Error(err))
			respondTicketError(c, err)
			return
		}

		c.JSON(http.StatusOK, ticket)
	}
}
