package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrTimeout means the gateway did not answer in time; the caller may retry.
	ErrTimeout = errors.New("gateway timeout")
	// ErrDeclined means the gateway answered and rejected the payment.
	ErrDeclined = errors.New("gateway declined payment")
)

// Client initiates fund collection with an external payment provider.
type Client interface {
	Initiate(ctx context.Context, req InitiateRequest) (*PaymentLink, error)
}

type InitiateRequest struct {
	TxRef       string // idempotency key, one per checkout, reused across retries
	Amount      decimal.Decimal
	Currency    string
	Email       string
	Name        string
	Phone       string
	RedirectURL string
}

type PaymentLink struct {
	TxRef string `json:"tx_ref"`
	Link  string `json:"link"`
}

type flutterwaveResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Link string `json:"link"`
	} `json:"data"`
}

// Flutterwave talks to the v3 payments API with a hard timeout and bounded
// retry on transport failures only; a decline is never retried.
type Flutterwave struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
}

func NewFlutterwave() (*Flutterwave, error) {
	secret := os.Getenv("FLW_SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("flutterwave configuration missing: FLW_SECRET_KEY")
	}
	baseURL := os.Getenv("FLW_API_URL")
	if baseURL == "" {
		baseURL = "https://api.flutterwave.com/v3/payments"
	}
	timeout := 15 * time.Second
	if v := os.Getenv("FLW_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		}
	}
	return &Flutterwave{
		secretKey:  secret,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
	}, nil
}

// NewFlutterwaveWithClient is used by tests to point at a stub server.
func NewFlutterwaveWithClient(secret, baseURL string, httpClient *http.Client, maxRetries int, backoff time.Duration) *Flutterwave {
	return &Flutterwave{
		secretKey:  secret,
		baseURL:    baseURL,
		httpClient: httpClient,
		maxRetries: maxRetries,
		backoff:    backoff,
	}
}

// Initiate retries timeouts up to maxRetries, reusing the same tx_ref so the
// provider can dedupe. Declines surface immediately.
func (f *Flutterwave) Initiate(ctx context.Context, req InitiateRequest) (*PaymentLink, error) {
	var lastErr error
	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
			case <-time.After(f.backoff * time.Duration(attempt)):
			}
		}
		link, err := f.initiateOnce(ctx, req)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, ErrTimeout) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (f *Flutterwave) initiateOnce(ctx context.Context, req InitiateRequest) (*PaymentLink, error) {
	currency := req.Currency
	if currency == "" {
		currency = "NGN"
	}
	payload := map[string]interface{}{
		"tx_ref":       req.TxRef,
		"amount":       req.Amount.StringFixed(2),
		"currency":     currency,
		"redirect_url": req.RedirectURL,
		"customer": map[string]string{
			"email":       req.Email,
			"name":        req.Name,
			"phonenumber": req.Phone,
		},
		"customizations": map[string]string{
			"title": "Zentoria Payments",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+f.secretKey)

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("failed to reach gateway: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrDeclined, resp.StatusCode, string(respBody))
	}

	var fwResp flutterwaveResponse
	if err := json.Unmarshal(respBody, &fwResp); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	if fwResp.Status != "success" {
		return nil, fmt.Errorf("%w: %s", ErrDeclined, fwResp.Message)
	}
	if fwResp.Data.Link == "" {
		return nil, fmt.Errorf("%w: gateway returned empty payment link", ErrDeclined)
	}

	return &PaymentLink{TxRef: req.TxRef, Link: fwResp.Data.Link}, nil
}
