package handler

import (
	"time"

	"card-payment-service/internal/adapter/http/dto"
	"card-payment-service/internal/core/domain"
	"card-payment-service/internal/core/ports"
	"card-payment-service/pkg/apperror"
	"card-payment-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet CRUD endpoints.
type WalletHandler struct {
	orchestrator ports.PaymentOrchestrator
	adminSvc     ports.WalletAdminService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(orchestrator ports.PaymentOrchestrator, adminSvc ports.WalletAdminService) *WalletHandler {
	return &WalletHandler{orchestrator: orchestrator, adminSvc: adminSvc}
}

// CreateWallet handles POST /api/v1/wallets.
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	var req dto.SaveWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.orchestrator.SaveWallet(c.Request.Context(), ports.SaveWalletRequest{
		WalletID:  req.WalletID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Card:      toCardDetails(req.Card),
		Create:    true,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.SaveWalletResponse{
		Success:  result.Success,
		Message:  result.Message,
		WalletID: result.WalletID,
	})
}

// UpdateWallet handles PUT /api/v1/wallets/:wallet_id.
func (h *WalletHandler) UpdateWallet(c *gin.Context) {
	var req dto.SaveWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.orchestrator.SaveWallet(c.Request.Context(), ports.SaveWalletRequest{
		WalletID:  c.Param("wallet_id"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Card:      toCardDetails(req.Card),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SaveWalletResponse{
		Success:  result.Success,
		Message:  result.Message,
		WalletID: result.WalletID,
	})
}

// GetWallet handles GET /api/v1/wallets/:wallet_id. It returns the gateway's
// view, which is authoritative over the local mirror.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	wallet, outcome := h.orchestrator.GetWallet(c.Request.Context(), c.Param("wallet_id"))

	resp := dto.GatewayWalletResponse{Success: outcome.Success, Message: outcome.Message}
	if wallet != nil {
		w := toWalletResponse(wallet)
		resp.Wallet = &w
	}
	response.OK(c, resp)
}

// GetLocalWallet handles GET /api/v1/wallets/:wallet_id/local.
func (h *WalletHandler) GetLocalWallet(c *gin.Context) {
	wallet, err := h.adminSvc.GetLocalWallet(c.Request.Context(), c.Param("wallet_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWalletResponse(wallet))
}

// DeleteWallet handles DELETE /api/v1/wallets/:wallet_id.
func (h *WalletHandler) DeleteWallet(c *gin.Context) {
	if err := h.adminSvc.RemoveWallet(c.Request.Context(), c.Param("wallet_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// ListTransactions handles GET /api/v1/wallets/:wallet_id/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	txns, err := h.adminSvc.ListTransactions(c.Request.Context(), c.Param("wallet_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}
	response.OK(c, dto.TransactionListResponse{Items: items, Total: len(items)})
}

// toWalletResponse converts domain.Wallet to DTO.
func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		WalletID:   w.WalletID,
		FirstName:  w.FirstName,
		LastName:   w.LastName,
		CardNumber: w.CardNumber,
		CardType:   string(w.CardType),
		CardExpiry: w.CardExpiry,
	}
}

// toTransactionResponse converts domain.Transaction to DTO.
func toTransactionResponse(t *domain.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		Token:         t.Token,
		WalletID:      t.WalletID,
		Amount:        t.Amount.StringFixed(2),
		TransactionID: t.TransactionID,
		ResultCode:    t.ResultCode,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
	if t.Date != nil {
		s := t.Date.Format(time.RFC3339)
		resp.Date = &s
	}
	if t.Order != nil {
		resp.OrderKind = &t.Order.Kind
		resp.OrderID = &t.Order.ID
	}
	return resp
}
