package paymentprovider

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the hosted payment gateway over its REST API.
type Client struct {
	baseURL       string
	secretKey     string
	webhookSecret string
	httpClient    *http.Client
	log           Logger
}

// NewClient creates a gateway client. secretKey authorizes API calls,
// webhookSecret validates incoming webhook signatures.
func NewClient(baseURL, secretKey, webhookSecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NewReference produces a gateway transaction reference unique per attempt.
func NewReference(appointmentID int64) string {
	return fmt.Sprintf("apt-%d-%s", appointmentID, uuid.NewString())
}

// InitializeTransaction starts a hosted checkout session and returns its URL.
func (c *Client) InitializeTransaction(ctx context.Context, request InitializeRequest) (*InitializeResult, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/transaction/initialize"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrDeclined, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var decoded initializeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if decoded.Status != "success" || decoded.Data.CheckoutURL == "" {
		return nil, fmt.Errorf("%w: status=%s message=%s", ErrDeclined, decoded.Status, decoded.Message)
	}

	c.log.Info("Initialized payment transaction reference=%s amount=%d", request.Reference, request.Amount)

	return &InitializeResult{
		CheckoutURL: decoded.Data.CheckoutURL,
		Reference:   request.Reference,
	}, nil
}

// VerifyTransaction asks the gateway for the final state of a transaction.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrTransactionNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var decoded verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &VerifyResult{
		Reference: decoded.Data.Reference,
		Amount:    int64(decoded.Data.Amount),
		Currency:  decoded.Data.Currency,
		Succeeded: decoded.Status == "success" && decoded.Data.Status == "success",
	}, nil
}

// VerifyWebhookSignature checks the HMAC-SHA256 hex signature the gateway
// attaches to webhook deliveries.
func (c *Client) VerifyWebhookSignature(payload []byte, signature string) bool {
	if c.webhookSecret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
