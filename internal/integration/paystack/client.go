package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.paystack.co"

// API is the slice of the Paystack transaction API the billing flow
// needs: start a hosted-payment-page transaction and confirm its
// outcome. Paystack stays the source of truth for transaction state.
type API interface {
	InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeData, error)
	VerifyTransaction(ctx context.Context, reference string) (*VerifyData, error)
}

type Config struct {
	SecretKey string
	BaseURL   string // override for tests / sandbox
}

type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// TransactionMetadata rides along with the transaction at Paystack and
// comes back verbatim on verify, so the verifier never has to trust a
// client-supplied plan id.
type TransactionMetadata struct {
	UserID string `json:"user_id"`
	PlanID string `json:"plan_id"`
}

type InitializeRequest struct {
	Email       string              `json:"email"`
	Amount      int64               `json:"amount"` // smallest currency unit, passed through unmodified
	Currency    string              `json:"currency"`
	CallbackURL string              `json:"callback_url"`
	Metadata    TransactionMetadata `json:"metadata"`
}

type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifyData struct {
	Status    string              `json:"status"` // "success" | "failed" | "abandoned" | ...
	Reference string              `json:"reference"`
	Amount    int64               `json:"amount"`
	Currency  string              `json:"currency"`
	PaidAt    string              `json:"paid_at"`
	Channel   string              `json:"channel"`
	Metadata  TransactionMetadata `json:"metadata"`
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeData, error) {
	var data InitializeData
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifyData, error) {
	var data VerifyData
	if err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("paystack: decoding response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Status {
		return fmt.Errorf("paystack: %s (http %d)", envelope.Message, resp.StatusCode)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("paystack: decoding data: %w", err)
		}
	}
	return nil
}
