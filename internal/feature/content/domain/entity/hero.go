// Package entity はcontentフィーチャーのドメインエンティティを定義します。
package entity

// HeroContentID はヒーローコンテンツ行の固定IDです。
// ヒーローコンテンツはシングルトンであり、常にこのIDの1行のみが存在します。
const HeroContentID uint = 1

// HeroContent はランディングページのヒーローセクションのコンテンツを表します。
// 固定ID(=1)の1行のみが存在し、更新は常に上書きで行われ、削除されることはありません。
type HeroContent struct {
	// ID はヒーローコンテンツの識別子です。常にHeroContentIDに固定されます。
	ID uint `gorm:"primaryKey" json:"id"`

	// Title はヒーローセクションのメインタイトルです。
	Title string `gorm:"size:255" json:"title"`

	// Subtitle はタイトルの下に表示されるサブタイトルです。
	Subtitle string `gorm:"size:255" json:"subtitle"`

	// Description はヒーローセクションの説明文です。
	Description string `gorm:"type:text" json:"description"`

	// WhatsappNumber は問い合わせ用のWhatsApp番号です。
	WhatsappNumber string `gorm:"size:50" json:"whatsappNumber"`
}

// TableName はGORMが使用するテーブル名を指定します。
func (HeroContent) TableName() string { return "hero_content" }
