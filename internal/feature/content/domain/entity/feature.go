package entity

// Feature はランディングページに表示されるサービスの特徴を表します。
// アイコンはシンボル名で保持し、グラフィックへの解決はクライアント側で行います。
type Feature struct {
	// ID は特徴の一意な識別子です。挿入順がそのまま表示順になります。
	ID uint `gorm:"primaryKey" json:"id"`

	// Icon はクライアント側で解決されるアイコンのシンボル名です（例: "TrendingUp"）。
	Icon string `gorm:"size:50;not null" json:"icon"`

	// Title は特徴のタイトルです。
	Title string `gorm:"size:255;not null" json:"title"`

	// Description は特徴の説明文です。
	Description string `gorm:"type:text;not null" json:"description"`
}
