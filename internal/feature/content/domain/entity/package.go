package entity

// Package は販売されるコースパッケージを表します。
type Package struct {
	// ID はパッケージの一意な識別子です。挿入順がそのまま表示順になります。
	ID uint `gorm:"primaryKey" json:"id"`

	// Name はパッケージ名です。
	Name string `gorm:"size:255;not null" json:"name"`

	// Price は表示用の価格文字列です（例: "Rp 50.000"）。
	// 表示にはこの文字列を使用し、決済時の数値化はAmountを優先します。
	Price string `gorm:"size:100;not null" json:"price"`

	// Amount は決済用の数値金額です。0以下の場合はPriceのパースにフォールバックします。
	Amount float64 `gorm:"default:0" json:"amount"`

	// Description はパッケージの説明文です。
	Description string `gorm:"type:text" json:"description"`

	// Features はパッケージに含まれる特典の順序付きリストです。JSONカラムとして保存されます。
	Features StringList `gorm:"type:json" json:"features"`

	// Popular は人気パッケージとして強調表示するかどうかのフラグです。
	Popular bool `gorm:"default:false" json:"popular"`
}
