package handlers

import (
	"net/http"

	"finchat/internal/dto"
	"finchat/internal/errors"
	"finchat/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// WebhookHandler receives WhatsApp Cloud API events and feeds them into the
// message pipeline.
type WebhookHandler struct {
	pipeline    services.PipelineServiceInterface
	verifyToken string
	logger      zerolog.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(pipeline services.PipelineServiceInterface, verifyToken string, logger zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		pipeline:    pipeline,
		verifyToken: verifyToken,
		logger:      logger.With().Str("component", "webhook").Logger(),
	}
}

// Verify handles the Cloud API subscription handshake: echo the challenge
// back when the verify token matches.
func (h *WebhookHandler) Verify(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	if mode != "subscribe" || token == "" || token != h.verifyToken {
		return SendError(c, errors.WebhookVerificationFailed)
	}

	return c.String(http.StatusOK, challenge)
}

// Receive handles an inbound event. The response is always 200 with a status
// body: Meta retries on non-2xx, and a processing failure is not something a
// retry would fix.
func (h *WebhookHandler) Receive(c echo.Context) error {
	var event dto.WebhookEvent
	if err := c.Bind(&event); err != nil {
		h.logger.Warn().Err(err).Msg("malformed webhook payload")
		return c.JSON(http.StatusOK, dto.WebhookAckResponse{Status: "ignored"})
	}

	senderID, text, ok := event.FirstTextMessage()
	if !ok {
		// Status-only events (delivery receipts etc.) are acknowledged silently.
		return c.JSON(http.StatusOK, dto.WebhookAckResponse{Status: "ignored"})
	}

	if err := h.pipeline.HandleMessage(c.Request().Context(), senderID, text); err != nil {
		h.logger.Error().Err(err).Str("sender", senderID).Msg("message processing failed")
		return c.JSON(http.StatusOK, dto.WebhookAckResponse{Status: "error"})
	}

	return c.JSON(http.StatusOK, dto.WebhookAckResponse{Status: "processed"})
}
