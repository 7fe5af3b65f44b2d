// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"academy_backend/internal/feature/content/domain/entity"
	"academy_backend/internal/feature/content/usecase"
)

// Cache keys, one per collection. Writes invalidate only their own collection.
const (
	keyHero         = "hero"
	keyFeatures     = "features"
	keyPackages     = "packages"
	keyTestimonials = "testimonials"
	keyFAQs         = "faqs"
)

// CachingContentRepository decorates a ContentRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Caching is best effort: a Redis failure
// never fails the request, and a nil Redis client bypasses the cache entirely.
type CachingContentRepository struct {
	inner     usecase.ContentRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingContentRepositoryがContentRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ContentRepository = (*CachingContentRepository)(nil)

// NewCachingContentRepository decorates a ContentRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "content".
func NewCachingContentRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ContentRepository, namespace string) *CachingContentRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "content"
	}
	return &CachingContentRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetHero retrieves the hero row, checking cache first then falling back to the database.
// The not-found case is never cached so an admin's first save is visible immediately.
func (c *CachingContentRepository) GetHero(ctx context.Context) (*entity.HeroContent, error) {
	if c.rdb == nil {
		return c.inner.GetHero(ctx)
	}

	key := c.key(keyHero)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.HeroContent
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.GetHero(ctx)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// SaveHero upserts the hero row and invalidates its cache entry.
func (c *CachingContentRepository) SaveHero(ctx context.Context, hero *entity.HeroContent) error {
	if err := c.inner.SaveHero(ctx, hero); err != nil {
		return err
	}
	c.invalidate(ctx, keyHero)
	return nil
}

// ListFeatures retrieves features, checking cache first.
func (c *CachingContentRepository) ListFeatures(ctx context.Context) ([]entity.Feature, error) {
	return listThrough(ctx, c, keyFeatures, c.inner.ListFeatures)
}

// CreateFeature delegates to the inner repository and invalidates the features cache.
func (c *CachingContentRepository) CreateFeature(ctx context.Context, f *entity.Feature) error {
	return c.writeThrough(ctx, keyFeatures, func() error { return c.inner.CreateFeature(ctx, f) })
}

// UpdateFeature delegates to the inner repository and invalidates the features cache.
func (c *CachingContentRepository) UpdateFeature(ctx context.Context, f *entity.Feature) error {
	return c.writeThrough(ctx, keyFeatures, func() error { return c.inner.UpdateFeature(ctx, f) })
}

// DeleteFeature delegates to the inner repository and invalidates the features cache.
func (c *CachingContentRepository) DeleteFeature(ctx context.Context, id uint) error {
	return c.writeThrough(ctx, keyFeatures, func() error { return c.inner.DeleteFeature(ctx, id) })
}

// ListPackages retrieves packages, checking cache first.
func (c *CachingContentRepository) ListPackages(ctx context.Context) ([]entity.Package, error) {
	return listThrough(ctx, c, keyPackages, c.inner.ListPackages)
}

// CreatePackage delegates to the inner repository and invalidates the packages cache.
func (c *CachingContentRepository) CreatePackage(ctx context.Context, p *entity.Package) error {
	return c.writeThrough(ctx, keyPackages, func() error { return c.inner.CreatePackage(ctx, p) })
}

// UpdatePackage delegates to the inner repository and invalidates the packages cache.
func (c *CachingContentRepository) UpdatePackage(ctx context.Context, p *entity.Package) error {
	return c.writeThrough(ctx, keyPackages, func() error { return c.inner.UpdatePackage(ctx, p) })
}

// DeletePackage delegates to the inner repository and invalidates the packages cache.
func (c *CachingContentRepository) DeletePackage(ctx context.Context, id uint) error {
	return c.writeThrough(ctx, keyPackages, func() error { return c.inner.DeletePackage(ctx, id) })
}

// ListTestimonials retrieves testimonials, checking cache first.
func (c *CachingContentRepository) ListTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	return listThrough(ctx, c, keyTestimonials, c.inner.ListTestimonials)
}

// CreateTestimonial delegates to the inner repository and invalidates the testimonials cache.
func (c *CachingContentRepository) CreateTestimonial(ctx context.Context, tm *entity.Testimonial) error {
	return c.writeThrough(ctx, keyTestimonials, func() error { return c.inner.CreateTestimonial(ctx, tm) })
}

// UpdateTestimonial delegates to the inner repository and invalidates the testimonials cache.
func (c *CachingContentRepository) UpdateTestimonial(ctx context.Context, tm *entity.Testimonial) error {
	return c.writeThrough(ctx, keyTestimonials, func() error { return c.inner.UpdateTestimonial(ctx, tm) })
}

// DeleteTestimonial delegates to the inner repository and invalidates the testimonials cache.
func (c *CachingContentRepository) DeleteTestimonial(ctx context.Context, id uint) error {
	return c.writeThrough(ctx, keyTestimonials, func() error { return c.inner.DeleteTestimonial(ctx, id) })
}

// ListFAQs retrieves FAQs, checking cache first.
func (c *CachingContentRepository) ListFAQs(ctx context.Context) ([]entity.FAQ, error) {
	return listThrough(ctx, c, keyFAQs, c.inner.ListFAQs)
}

// CreateFAQ delegates to the inner repository and invalidates the FAQs cache.
func (c *CachingContentRepository) CreateFAQ(ctx context.Context, f *entity.FAQ) error {
	return c.writeThrough(ctx, keyFAQs, func() error { return c.inner.CreateFAQ(ctx, f) })
}

// UpdateFAQ delegates to the inner repository and invalidates the FAQs cache.
func (c *CachingContentRepository) UpdateFAQ(ctx context.Context, f *entity.FAQ) error {
	return c.writeThrough(ctx, keyFAQs, func() error { return c.inner.UpdateFAQ(ctx, f) })
}

// DeleteFAQ delegates to the inner repository and invalidates the FAQs cache.
func (c *CachingContentRepository) DeleteFAQ(ctx context.Context, id uint) error {
	return c.writeThrough(ctx, keyFAQs, func() error { return c.inner.DeleteFAQ(ctx, id) })
}

// key generates a namespaced cache key for a collection.
func (c *CachingContentRepository) key(collection string) string {
	return c.namespace + ":" + collection
}

// invalidate removes a collection's cache entry. Best effort: failures are ignored.
func (c *CachingContentRepository) invalidate(ctx context.Context, collection string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.key(collection)).Err()
}

// writeThrough runs a mutation against the inner repository and, on success,
// invalidates the collection's cache entry.
func (c *CachingContentRepository) writeThrough(ctx context.Context, collection string, mutate func() error) error {
	if err := mutate(); err != nil {
		return err
	}
	c.invalidate(ctx, collection)
	return nil
}

// listThrough retrieves a collection, checking cache first then falling back
// to the inner repository and storing the result (best effort).
func listThrough[T any](ctx context.Context, c *CachingContentRepository, collection string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if c.rdb == nil {
		return fetch(ctx)
	}

	key := c.key(collection)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
