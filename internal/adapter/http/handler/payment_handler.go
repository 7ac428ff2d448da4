package handler

import (
	"card-payment-service/internal/adapter/http/dto"
	"card-payment-service/internal/core/domain"
	"card-payment-service/internal/core/ports"
	"card-payment-service/pkg/apperror"
	"card-payment-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles card validation and wallet payment endpoints.
type PaymentHandler struct {
	orchestrator ports.PaymentOrchestrator
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(orchestrator ports.PaymentOrchestrator) *PaymentHandler {
	return &PaymentHandler{orchestrator: orchestrator}
}

// ValidateCard handles POST /api/v1/cards/validate.
func (h *PaymentHandler) ValidateCard(c *gin.Context) {
	var req dto.ValidateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.orchestrator.ValidateCard(c.Request.Context(), toCardDetails(req.Card))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OutcomeResponse{Success: outcome.Success, Message: outcome.Message})
}

// PayFromWallet handles POST /api/v1/wallets/:wallet_id/payments.
func (h *PaymentHandler) PayFromWallet(c *gin.Context) {
	walletID := c.Param("wallet_id")

	var req dto.PayFromWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	result, err := h.orchestrator.PayFromWallet(c.Request.Context(), walletID, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.PayFromWalletResponse{
		Success:       result.Success,
		Message:       result.Message,
		TransactionID: result.TransactionID,
		Token:         result.Token,
	})
}

// toCardDetails converts the card DTO to the service-level card input.
func toCardDetails(card dto.CardRequest) ports.CardDetails {
	return ports.CardDetails{
		Number: card.Number,
		Type:   domain.CardType(card.Type),
		Expiry: card.Expiry,
		CVX:    card.CVX,
	}
}
