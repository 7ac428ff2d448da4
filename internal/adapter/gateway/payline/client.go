// Package payline implements ports.GatewayClient against the Payline
// JSON API. One HTTP round trip per gateway operation; transport and
// decoding failures come back as errors, gateway verdicts come back in
// the result block.
package payline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"card-payment-service/config"
	"card-payment-service/internal/core/domain"
	"card-payment-service/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	homologationBaseURL = "https://homologation.payline.com/V4"
	productionBaseURL   = "https://services.payline.com/V4"

	// webPaymentVersion selects the web-payment API revision on detail
	// fetches.
	webPaymentVersion = 4
)

// Client talks to the Payline API over HTTPS with basic auth.
type Client struct {
	baseURL    string
	merchantID string
	apiKey     string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a Client from gateway settings. The base URL follows the
// configured environment.
func NewClient(cfg config.GatewayConfig, log zerolog.Logger) *Client {
	baseURL := homologationBaseURL
	if cfg.Environment == config.GatewayEnvProduction {
		baseURL = productionBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		merchantID: cfg.MerchantID,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// Wire types mirror the provider's field naming.

type wireResult struct {
	Code         string `json:"code"`
	ShortMessage string `json:"shortMessage"`
	LongMessage  string `json:"longMessage"`
}

type wirePayment struct {
	Amount         int64  `json:"amount"`
	Currency       int    `json:"currency"`
	Action         int    `json:"action"`
	Mode           string `json:"mode"`
	ContractNumber string `json:"contractNumber"`
}

type wireOrder struct {
	Ref      string `json:"ref"`
	Amount   int64  `json:"amount"`
	Currency int    `json:"currency"`
	Date     string `json:"date"`
}

type wireCard struct {
	Number         string `json:"number"`
	Type           string `json:"type"`
	ExpirationDate string `json:"expirationDate"`
	CVX            string `json:"cvx"`
}

type wireWallet struct {
	WalletID  string   `json:"walletId"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Card      wireCard `json:"card"`
}

type wireBuyer struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	IP        string `json:"ip,omitempty"`
}

func toWirePayment(p ports.Payment) wirePayment {
	return wirePayment{
		Amount:         p.AmountMinor,
		Currency:       p.Currency,
		Action:         p.Action,
		Mode:           p.Mode,
		ContractNumber: p.ContractNumber,
	}
}

func toWireOrder(o ports.Order) wireOrder {
	return wireOrder{
		Ref:      o.Ref,
		Amount:   o.AmountMinor,
		Currency: o.Currency,
		Date:     o.Date,
	}
}

// post sends one JSON request and decodes the response into out.
func (c *Client) post(ctx context.Context, operation string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", operation, err)
	}

	url := c.baseURL + "/" + operation
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.merchantID, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("calling %s: unexpected status %d", operation, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", operation, err)
	}

	c.log.Debug().Str("operation", operation).Msg("gateway call completed")
	return nil
}

// Authorize reserves or captures funds on a raw card.
func (c *Client) Authorize(ctx context.Context, req ports.AuthorizationRequest) (*ports.AuthorizationResponse, error) {
	payload := struct {
		Payment wirePayment `json:"payment"`
		Order   wireOrder   `json:"order"`
		Card    wireCard    `json:"card"`
	}{
		Payment: toWirePayment(req.Payment),
		Order:   toWireOrder(req.Order),
		Card: wireCard{
			Number:         req.Card.Number,
			Type:           string(req.Card.Type),
			ExpirationDate: req.Card.Expiry,
			CVX:            req.Card.CVX,
		},
	}

	var resp struct {
		Result      wireResult `json:"result"`
		Transaction struct {
			ID string `json:"id"`
		} `json:"transaction"`
	}
	if err := c.post(ctx, "doAuthorization", payload, &resp); err != nil {
		return nil, err
	}
	return &ports.AuthorizationResponse{
		Result:        toResult(resp.Result),
		TransactionID: resp.Transaction.ID,
	}, nil
}

// ReverseAuthorization cancels an earlier authorization.
func (c *Client) ReverseAuthorization(ctx context.Context, transactionID, comment string) error {
	payload := struct {
		TransactionID string `json:"transactionID"`
		Comment       string `json:"comment"`
	}{
		TransactionID: transactionID,
		Comment:       comment,
	}

	var resp struct {
		Result wireResult `json:"result"`
	}
	if err := c.post(ctx, "doReset", payload, &resp); err != nil {
		return err
	}
	if resp.Result.Code != ports.PaymentSuccessCode {
		return fmt.Errorf("doReset refused: %s", toResult(resp.Result).Message())
	}
	return nil
}

// CreateWallet registers a wallet profile at the gateway.
func (c *Client) CreateWallet(ctx context.Context, req ports.WalletRequest) (*ports.WalletOpResponse, error) {
	return c.upsertWallet(ctx, "createWallet", req)
}

// UpdateWallet replaces the card data of an existing wallet.
func (c *Client) UpdateWallet(ctx context.Context, req ports.WalletRequest) (*ports.WalletOpResponse, error) {
	return c.upsertWallet(ctx, "updateWallet", req)
}

func (c *Client) upsertWallet(ctx context.Context, operation string, req ports.WalletRequest) (*ports.WalletOpResponse, error) {
	payload := struct {
		ContractNumber string     `json:"contractNumber"`
		Wallet         wireWallet `json:"wallet"`
	}{
		ContractNumber: req.ContractNumber,
		Wallet: wireWallet{
			WalletID:  req.Wallet.WalletID,
			FirstName: req.Wallet.FirstName,
			LastName:  req.Wallet.LastName,
			Card: wireCard{
				Number:         req.Wallet.CardNumber,
				Type:           string(req.Wallet.CardType),
				ExpirationDate: req.Wallet.CardExpiry,
				CVX:            req.CVX,
			},
		},
	}

	var resp struct {
		Result wireResult `json:"result"`
	}
	if err := c.post(ctx, operation, payload, &resp); err != nil {
		return nil, err
	}
	return &ports.WalletOpResponse{Result: toResult(resp.Result)}, nil
}

// FetchWallet retrieves the gateway's stored wallet profile.
func (c *Client) FetchWallet(ctx context.Context, contractNumber, walletID string) (*ports.WalletOpResponse, error) {
	payload := struct {
		ContractNumber string `json:"contractNumber"`
		WalletID       string `json:"walletId"`
	}{
		ContractNumber: contractNumber,
		WalletID:       walletID,
	}

	var resp struct {
		Result wireResult  `json:"result"`
		Wallet *wireWallet `json:"wallet"`
	}
	if err := c.post(ctx, "getWallet", payload, &resp); err != nil {
		return nil, err
	}

	out := &ports.WalletOpResponse{Result: toResult(resp.Result)}
	if resp.Wallet != nil {
		out.Wallet = &domain.Wallet{
			WalletID:   resp.Wallet.WalletID,
			FirstName:  resp.Wallet.FirstName,
			LastName:   resp.Wallet.LastName,
			CardNumber: resp.Wallet.Card.Number,
			CardType:   domain.CardType(resp.Wallet.Card.Type),
			CardExpiry: resp.Wallet.Card.ExpirationDate,
		}
	}
	return out, nil
}

// ChargeWallet pays immediately from a stored wallet.
func (c *Client) ChargeWallet(ctx context.Context, req ports.ChargeRequest) (*ports.ChargeResponse, error) {
	payload := struct {
		Payment  wirePayment `json:"payment"`
		Order    wireOrder   `json:"order"`
		WalletID string      `json:"walletId"`
	}{
		Payment:  toWirePayment(req.Payment),
		Order:    toWireOrder(req.Order),
		WalletID: req.WalletID,
	}

	var resp struct {
		Result      wireResult `json:"result"`
		Transaction struct {
			ID string `json:"id"`
		} `json:"transaction"`
	}
	if err := c.post(ctx, "doImmediateWalletPayment", payload, &resp); err != nil {
		return nil, err
	}
	return &ports.ChargeResponse{
		Result:        toResult(resp.Result),
		TransactionID: resp.Transaction.ID,
	}, nil
}

// InitiateWebPayment opens a hosted-page payment session.
func (c *Client) InitiateWebPayment(ctx context.Context, req ports.WebPaymentRequest) (*ports.WebPaymentResponse, error) {
	payload := struct {
		Payment         wirePayment `json:"payment"`
		Order           wireOrder   `json:"order"`
		Buyer           *wireBuyer  `json:"buyer,omitempty"`
		ReturnURL       string      `json:"returnURL"`
		CancelURL       string      `json:"cancelURL"`
		NotificationURL string      `json:"notificationURL,omitempty"`
		Contracts       []string    `json:"selectedContractList"`
	}{
		Payment:         toWirePayment(req.Payment),
		Order:           toWireOrder(req.Order),
		ReturnURL:       req.ReturnURL,
		CancelURL:       req.CancelURL,
		NotificationURL: req.NotificationURL,
		Contracts:       req.Contracts,
	}
	if req.Buyer != nil {
		payload.Buyer = &wireBuyer{
			FirstName: req.Buyer.FirstName,
			LastName:  req.Buyer.LastName,
			Email:     req.Buyer.Email,
			IP:        req.Buyer.IP,
		}
	}

	var resp struct {
		Result      wireResult `json:"result"`
		RedirectURL string     `json:"redirectURL"`
	}
	if err := c.post(ctx, "doWebPayment", payload, &resp); err != nil {
		return nil, err
	}
	return &ports.WebPaymentResponse{
		Result:      toResult(resp.Result),
		RedirectURL: resp.RedirectURL,
	}, nil
}

// FetchWebPaymentDetails retrieves the final outcome of a hosted-page
// session.
func (c *Client) FetchWebPaymentDetails(ctx context.Context, token string) (*ports.WebPaymentDetails, error) {
	payload := struct {
		Token   string `json:"token"`
		Version int    `json:"version"`
	}{
		Token:   token,
		Version: webPaymentVersion,
	}

	var resp struct {
		Result      wireResult `json:"result"`
		Transaction struct {
			ID   string `json:"id"`
			Date string `json:"date"`
		} `json:"transaction"`
	}
	if err := c.post(ctx, "getWebPaymentDetails", payload, &resp); err != nil {
		return nil, err
	}
	return &ports.WebPaymentDetails{
		Result:          toResult(resp.Result),
		TransactionID:   resp.Transaction.ID,
		TransactionDate: resp.Transaction.Date,
	}, nil
}

func toResult(r wireResult) ports.GatewayResult {
	return ports.GatewayResult{
		Code:         r.Code,
		ShortMessage: r.ShortMessage,
		LongMessage:  r.LongMessage,
	}
}
