package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client implements Gateway against the storefront backend's payment API.
// Construct it at the application root and inject it wherever a Gateway is
// needed; there is no package-level instance.
type Client struct {
	baseURL string
	client  *http.Client
}

// Compile-time interface check
var _ Gateway = (*Client)(nil)

// NewClient creates a gateway client for the given backend base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type createIntentRequest struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
}

type createIntentData struct {
	TransactionID string `json:"transactionId"`
	ClientSecret  string `json:"clientSecret"`
}

type confirmRequest struct {
	ClientSecret string `json:"clientSecret"`
}

type confirmData struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type cancelRequest struct {
	TransactionID string `json:"transactionId"`
}

// CreateTransaction requests a new payment transaction for the rounded
// total. Gateway-reported business failures and transport failures both
// surface as errors.
func (c *Client) CreateTransaction(amount float64, meta TransactionMetadata) (CreateResult, error) {
	var data createIntentData
	err := c.post("/api/auth/create-payment-intent", createIntentRequest{
		ProductID: meta.ProductID,
		Title:     meta.Title,
		Amount:    amount,
	}, &data)
	if err != nil {
		return CreateResult{}, fmt.Errorf("create transaction: %w", err)
	}
	if data.ClientSecret == "" {
		return CreateResult{}, fmt.Errorf("create transaction: response missing client secret")
	}
	return CreateResult{
		TransactionID: data.TransactionID,
		ClientSecret:  data.ClientSecret,
	}, nil
}

// ConfirmTransaction asks the backend to confirm the transaction
// identified by the client secret.
func (c *Client) ConfirmTransaction(clientSecret string) (ConfirmResult, error) {
	var data confirmData
	err := c.post("/api/auth/confirm-payment", confirmRequest{ClientSecret: clientSecret}, &data)
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("confirm transaction: %w", err)
	}
	switch data.Status {
	case "succeeded":
		return ConfirmResult{Status: ConfirmSucceeded}, nil
	case "card_declined", "validation_error":
		return ConfirmResult{Status: ConfirmDeclined, Reason: data.Reason}, nil
	case "requires_action":
		return ConfirmResult{Status: ConfirmRequiresAction}, nil
	default:
		return ConfirmResult{Status: ConfirmOther, RawStatus: data.Status}, nil
	}
}

// CancelTransaction requests remote cancellation of the transaction.
func (c *Client) CancelTransaction(transactionID string) error {
	if err := c.post("/api/auth/cancel-payment-intent", cancelRequest{TransactionID: transactionID}, nil); err != nil {
		return fmt.Errorf("cancel transaction: %w", err)
	}
	return nil
}

func (c *Client) post(path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(raw))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		message := env.Message
		if message == "" {
			message = "gateway rejected the request"
		}
		return fmt.Errorf("%s", message)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}
