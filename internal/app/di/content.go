// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	contentadapters "academy_backend/internal/feature/content/adapters"
	"academy_backend/internal/feature/content/usecase"
	"academy_backend/internal/platform/cache"
)

// contentCacheTTL はコンテンツコレクションのキャッシュ保持期間です。
// 書き込み時に無効化されるため、TTLは取りこぼしの保険にすぎません。
const contentCacheTTL = 5 * time.Minute

// NewContentRepository creates a ContentRepository implementation.
// If Redis is available, the MySQL repository is wrapped with a caching decorator.
// Otherwise, the plain MySQL repository is returned.
func NewContentRepository(rdb *redis.Client, db *gorm.DB) usecase.ContentRepository {
	repo := contentadapters.NewContentMySQL(db)
	if rdb != nil {
		return cache.NewCachingContentRepository(rdb, contentCacheTTL, repo, "content")
	}
	return repo
}
