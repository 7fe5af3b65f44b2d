package di

import (
	"time"

	"academy_backend/internal/platform/config"
	"academy_backend/internal/platform/externalapi/nowpayments"
	infrahttp "academy_backend/internal/platform/http"
	"academy_backend/internal/shared/ratelimiter"
)

const (
	// paymentTimeout はNOWPayments API呼び出しのタイムアウトです。
	paymentTimeout = 15 * time.Second

	// paymentCallsPerMinute はプロバイダーへの呼び出し頻度の上限です。
	paymentCallsPerMinute = 30
)

// NewPaymentGateway creates a fully configured NOWPayments client with
// a tuned HTTP client and a shared rate limiter.
func NewPaymentGateway(cfg config.Config) *nowpayments.Client {
	gwCfg := nowpayments.Config{
		APIKey:         cfg.NowPayments.APIKey,
		BaseURL:        cfg.NowPayments.BaseURL,
		IPNCallbackURL: cfg.NowPayments.IPNCallbackURL,
		SuccessURL:     cfg.FrontendURL + "/payment/success",
		CancelURL:      cfg.FrontendURL,
		Timeout:        paymentTimeout,
	}
	httpClient := infrahttp.NewHTTPClient(gwCfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(paymentCallsPerMinute, time.Minute)
	return nowpayments.NewClient(gwCfg, httpClient, limiter)
}
