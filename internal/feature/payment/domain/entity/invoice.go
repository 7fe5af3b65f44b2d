// Package entity はpaymentフィーチャーのドメインエンティティを定義します。
package entity

// Invoice は外部決済プロバイダーに対するインボイス作成要求を表します。
type Invoice struct {
	// Amount は請求金額です。正の数でなければなりません。
	Amount float64

	// Currency は通貨コードです（例: "usd"）。検証せずそのまま渡します。
	Currency string

	// Description は注文の説明文です（例: "Pembelian Paket: Paket Harian"）。
	Description string
}
