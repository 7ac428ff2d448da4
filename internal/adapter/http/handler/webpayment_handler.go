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

// WebPaymentHandler handles hosted-page payment endpoints.
type WebPaymentHandler struct {
	orchestrator ports.PaymentOrchestrator
	adminSvc     ports.WalletAdminService
}

// NewWebPaymentHandler creates a new WebPaymentHandler.
func NewWebPaymentHandler(orchestrator ports.PaymentOrchestrator, adminSvc ports.WalletAdminService) *WebPaymentHandler {
	return &WebPaymentHandler{orchestrator: orchestrator, adminSvc: adminSvc}
}

// StartWebPayment handles POST /api/v1/web-payments.
func (h *WebPaymentHandler) StartWebPayment(c *gin.Context) {
	var req dto.StartWebPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	svcReq := ports.StartWebPaymentRequest{Amount: amount}
	if req.OrderKind != "" && req.OrderID != nil {
		svcReq.Order = &domain.OrderRef{Kind: req.OrderKind, ID: *req.OrderID}
	}
	if req.Buyer != nil {
		svcReq.Buyer = &ports.Buyer{
			FirstName: req.Buyer.FirstName,
			LastName:  req.Buyer.LastName,
			Email:     req.Buyer.Email,
			IP:        req.Buyer.IP,
		}
	}

	session, err := h.orchestrator.StartWebPayment(c.Request.Context(), svcReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.StartWebPaymentResponse{
		Success:     session.Success,
		Message:     session.Message,
		Token:       session.Token,
		RedirectURL: session.RedirectURL,
	})
}

// ConfirmWebPayment handles POST /api/v1/web-payments/:token/confirm.
func (h *WebPaymentHandler) ConfirmWebPayment(c *gin.Context) {
	outcome, err := h.orchestrator.ConfirmWebPayment(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OutcomeResponse{Success: outcome.Success, Message: outcome.Message})
}

// GetTransaction handles GET /api/v1/transactions/:token.
func (h *WebPaymentHandler) GetTransaction(c *gin.Context) {
	txn, err := h.adminSvc.GetTransaction(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionResponse(txn))
}
