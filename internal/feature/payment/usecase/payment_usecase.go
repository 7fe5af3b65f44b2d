// Package usecase はpaymentフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"academy_backend/internal/feature/payment/domain/entity"
)

// DefaultCurrency は通貨コードが未指定の場合に使用される通貨です。
const DefaultCurrency = "usd"

var (
	// ErrInvalidAmount は抽出された金額が正の数でない場合に返されます。
	// このエラーはプロバイダーへのネットワーク呼び出しの前に返されます。
	ErrInvalidAmount = errors.New("payment amount must be a positive number")

	// ErrUnparsablePrice は価格文字列から数値を抽出できない場合に返されます。
	ErrUnparsablePrice = errors.New("price string contains no parsable amount")
)

// InvoiceGateway は外部決済プロバイダーへのインボイス作成を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（externalapi）ではなくコンシューマー（usecase）が定義します。
type InvoiceGateway interface {
	// CreateInvoice はホスト型チェックアウトページのURLを取得します。
	CreateInvoice(ctx context.Context, inv entity.Invoice) (string, error)
}

// paymentUsecase は決済開始のユースケースを実装します。
// 状態を持たない外部呼び出しのパススルーであり、決済確認（IPN）は扱いません。
type paymentUsecase struct {
	gateway InvoiceGateway
}

// NewPaymentUsecase はpaymentUsecaseの新しいインスタンスを生成します。
func NewPaymentUsecase(gateway InvoiceGateway) *paymentUsecase {
	return &paymentUsecase{gateway: gateway}
}

// CreatePayment はインボイスを作成し、チェックアウトURLを返します。
// 金額はプロバイダー呼び出しの前に検証され、不正な場合はネットワーク
// アクセスなしでErrInvalidAmountを返します。
func (u *paymentUsecase) CreatePayment(ctx context.Context, amount float64, currency, description string) (string, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", ErrInvalidAmount
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	url, err := u.gateway.CreateInvoice(ctx, entity.Invoice{
		Amount:      amount,
		Currency:    currency,
		Description: description,
	})
	if err != nil {
		return "", fmt.Errorf("create invoice: %w", err)
	}
	return url, nil
}

// ParsePrice は表示用の価格文字列からベストエフォートで数値金額を抽出します。
//
// 元システムのクライアントは parseFloat(price.replace(/[^0-9.-]+/g, "")) で
// 金額を抽出していたため、その挙動に固定します:
//  1. 数字・ピリオド・マイナス以外の文字をすべて取り除く
//  2. 残った文字列の、floatとして妥当な最長プレフィックスをパースする
//
// 例: "Rp 50.000" → 50、"$99.50" → 99.5、"1.234.567" → 1.234。
// ロケール依存で桁区切りが失われる点は既知の弱点であり、決済には
// Package.Amountフィールドの利用を優先すべきです。
func ParsePrice(price string) (float64, error) {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	stripped := b.String()
	if stripped == "" {
		return 0, ErrUnparsablePrice
	}

	// JSのparseFloatと同様、妥当な最長プレフィックスを採用する
	prefix := floatPrefix(stripped)
	if prefix == "" {
		return 0, ErrUnparsablePrice
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, ErrUnparsablePrice
	}
	return v, nil
}

// floatPrefix は文字列の先頭から、floatリテラルとして妥当な最長の
// プレフィックスを切り出します。マイナスは先頭のみ、ピリオドは1つまで許容します。
func floatPrefix(s string) string {
	end := 0
	seenDot := false
	seenDigit := false
	for i, r := range s {
		switch {
		case r == '-':
			if i != 0 {
				goto done
			}
		case r == '.':
			if seenDot {
				goto done
			}
			seenDot = true
		case r >= '0' && r <= '9':
			seenDigit = true
		default:
			goto done
		}
		end = i + 1
	}
done:
	if !seenDigit {
		return ""
	}
	return s[:end]
}
