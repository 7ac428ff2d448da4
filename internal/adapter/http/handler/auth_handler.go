package handler

import (
	"crypto/subtle"

	"card-payment-service/config"
	"card-payment-service/internal/adapter/http/dto"
	"card-payment-service/internal/core/ports"
	"card-payment-service/pkg/apperror"
	"card-payment-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles API token issuance.
type AuthHandler struct {
	tokenSvc ports.TokenService
	authCfg  config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokenSvc ports.TokenService, authCfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{tokenSvc: tokenSvc, authCfg: authCfg}
}

// IssueToken handles POST /api/v1/auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	idOK := subtle.ConstantTimeCompare([]byte(req.ClientID), []byte(h.authCfg.ClientID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(req.ClientSecret), []byte(h.authCfg.ClientSecret)) == 1
	if !idOK || !secretOK {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	token, expiresAt, err := h.tokenSvc.Generate(req.ClientID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.TokenResponse{
		Token:  token,
		Expiry: expiresAt.Unix(),
	})
}
