package entity

// Testimonial は受講者の体験談を表します。
type Testimonial struct {
	// ID は体験談の一意な識別子です。挿入順がそのまま表示順になります。
	ID uint `gorm:"primaryKey" json:"id"`

	// Name は投稿者の名前です。
	Name string `gorm:"size:255;not null" json:"name"`

	// Role は投稿者の肩書きです（例: "Full-time Trader"）。
	Role string `gorm:"size:100" json:"role"`

	// Content は体験談の本文です。
	Content string `gorm:"type:text;not null" json:"content"`

	// Rating は1〜5の整数評価です。デフォルトは5です。
	Rating int `gorm:"default:5" json:"rating"`
}
