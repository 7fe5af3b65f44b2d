// Package handler はpaymentフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/api"
	"academy_backend/internal/feature/payment/usecase"
)

// PaymentUsecase は決済開始のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PaymentUsecase interface {
	// CreatePayment はインボイスを作成し、チェックアウトURLを返します。
	CreatePayment(ctx context.Context, amount float64, currency, description string) (string, error)
}

// PaymentHandler は決済開始のHTTPリクエストを処理します。
type PaymentHandler struct {
	uc PaymentUsecase
}

// NewPaymentHandler はPaymentHandlerの新しいインスタンスを生成します。
func NewPaymentHandler(uc PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreatePayment は決済開始APIエンドポイントを処理します。
// - リクエストJSONをCreatePaymentRequestにバインド
// - 金額が正の数でない場合は400を返却（プロバイダー呼び出しなし）
// - プロバイダー障害時は502と汎用メッセージを返却
// - 成功時はチェックアウトURL付きで200を返却
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req api.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("payment validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	url, err := h.uc.CreatePayment(c.Request.Context(), req.PriceAmount, req.PriceCurrency, req.OrderDescription)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAmount) {
			slog.Warn("payment rejected: invalid amount", "amount", req.PriceAmount, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid payment amount"})
			return
		}
		// プロバイダー起因の失敗。詳細はログにのみ出力する
		slog.Error("payment initiation failed", "error", err, "description", req.OrderDescription)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{
			Message: "Failed to create payment link",
			Error:   "payment provider error",
		})
		return
	}

	slog.Info("payment invoice created", "description", req.OrderDescription, "currency", req.PriceCurrency)
	c.JSON(http.StatusOK, api.CreatePaymentResponse{InvoiceURL: url})
}
