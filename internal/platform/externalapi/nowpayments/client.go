package nowpayments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"academy_backend/internal/feature/payment/domain/entity"
	"academy_backend/internal/feature/payment/usecase"
	"academy_backend/internal/shared/ratelimiter"
)

// Client はNOWPaymentsインボイスAPIから決済ページURLを取得するInvoiceGateway実装です。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// ClientがInvoiceGatewayを実装していることをコンパイル時に検証します。
var _ usecase.InvoiceGateway = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
// limiterがnilでない場合、各API呼び出しの前にリミッターを通過します。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// invoiceRequest はPOST /invoiceのリクエストボディです。
type invoiceRequest struct {
	PriceAmount      float64 `json:"price_amount"`
	PriceCurrency    string  `json:"price_currency"`
	OrderDescription string  `json:"order_description"`
	IPNCallbackURL   string  `json:"ipn_callback_url,omitempty"`
	SuccessURL       string  `json:"success_url,omitempty"`
	CancelURL        string  `json:"cancel_url,omitempty"`
}

// invoiceResponse はPOST /invoiceのレスポンスボディです。
// 失敗時はmessageにプロバイダーのエラーメッセージが入ります。
type invoiceResponse struct {
	ID         string `json:"id"`
	InvoiceURL string `json:"invoice_url"`
	Message    string `json:"message"`
}

// CreateInvoice はNOWPaymentsにインボイスを作成し、ホスト型チェックアウト
// ページのURLを返します。2xxレスポンスにinvoice_urlが含まれない場合もエラーです。
func (c *Client) CreateInvoice(ctx context.Context, inv entity.Invoice) (string, error) {
	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	body, err := json.Marshal(invoiceRequest{
		PriceAmount:      inv.Amount,
		PriceCurrency:    inv.Currency,
		OrderDescription: inv.Description,
		IPNCallbackURL:   c.cfg.IPNCallbackURL,
		SuccessURL:       c.cfg.SuccessURL,
		CancelURL:        c.cfg.CancelURL,
	})
	if err != nil {
		return "", err
	}

	u := c.cfg.BaseURL + "/invoice"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	var out invoiceResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("nowpayments: decode response: %w", err)
	}

	if res.StatusCode >= 400 {
		if out.Message != "" {
			return "", fmt.Errorf("nowpayments http %d: %s", res.StatusCode, out.Message)
		}
		return "", fmt.Errorf("nowpayments http %d", res.StatusCode)
	}
	if out.InvoiceURL == "" {
		return "", fmt.Errorf("nowpayments: response missing invoice_url")
	}
	return out.InvoiceURL, nil
}
