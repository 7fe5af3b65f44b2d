// Package api はHTTP境界で使用されるリクエスト/レスポンス型を定義します。
package api

// ErrorResponse は失敗時の統一レスポンスです。
// Messageはユーザー向けの汎用メッセージ、Errorはサニタイズ済みの
// エラー分類です。内部エラーの生テキストはログにのみ出力されます。
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse は成功メッセージのみを返すレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse はログイン成功時にJWTトークンを返すレスポンスです。
type TokenResponse struct {
	Token string `json:"token"`
}

// LoginRequest は管理者ログインのリクエストボディです。
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// HeroRequest はヒーローコンテンツ更新のリクエストボディです。
type HeroRequest struct {
	Title          string `json:"title" binding:"required"`
	Subtitle       string `json:"subtitle"`
	Description    string `json:"description"`
	WhatsappNumber string `json:"whatsappNumber"`
}

// FeatureRequest は特徴の作成・更新のリクエストボディです。
type FeatureRequest struct {
	Icon        string `json:"icon" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// PackageRequest はパッケージの作成・更新のリクエストボディです。
// Priceは表示用文字列で、書式のバリデーションは行いません。
type PackageRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       string   `json:"price" binding:"required"`
	Amount      float64  `json:"amount"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
}

// TestimonialRequest は体験談の作成・更新のリクエストボディです。
type TestimonialRequest struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating"`
}

// FAQRequest はFAQの作成・更新のリクエストボディです。
type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// CreatePaymentRequest は決済開始のリクエストボディです。
// フィールド名はNOWPaymentsのインボイスAPIに合わせています。
type CreatePaymentRequest struct {
	PriceAmount      float64 `json:"price_amount"`
	PriceCurrency    string  `json:"price_currency"`
	OrderDescription string  `json:"order_description"`
}

// CreatePaymentResponse は決済開始成功時のレスポンスです。
// InvoiceURLはプロバイダーがホストするチェックアウトページのURLです。
type CreatePaymentResponse struct {
	InvoiceURL string `json:"invoice_url"`
}
