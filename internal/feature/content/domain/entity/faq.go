package entity

// FAQ はよくある質問とその回答を表します。
type FAQ struct {
	// ID はFAQの一意な識別子です。挿入順がそのまま表示順になります。
	ID uint `gorm:"primaryKey" json:"id"`

	// Question は質問文です。
	Question string `gorm:"type:text;not null" json:"question"`

	// Answer は回答文です。
	Answer string `gorm:"type:text;not null" json:"answer"`
}

// TableName はGORMが使用するテーブル名を指定します。
// GORMのデフォルト複数形化は"f_a_qs"を生成するため明示します。
func (FAQ) TableName() string { return "faqs" }
