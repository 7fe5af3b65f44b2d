// Package db はデータベース接続の初期化とスキーマ管理を提供します。
package db

import (
	"log"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authentity "academy_backend/internal/feature/auth/domain/entity"
	contententity "academy_backend/internal/feature/content/domain/entity"
	"academy_backend/internal/platform/config"
)

// OpenDB はMySQLへの接続を開き、スキーマを冪等に作成します。
// 接続プールのハンドルは呼び出し元が各コンポーネントに注入します。
// グローバル変数として保持してはいけません。
func OpenDB(cfg config.DB) *gorm.DB {
	db, err := gorm.Open(gmysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// マイグレーション（テーブルが存在しない場合のみ作成）
	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate はすべてのエンティティのテーブルを冪等に作成します。
// バージョン管理された移行は行わず、"create if not exists"のみです。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&contententity.HeroContent{},
		&contententity.Feature{},
		&contententity.Package{},
		&contententity.Testimonial{},
		&contententity.FAQ{},
	)
}
