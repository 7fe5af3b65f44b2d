// Package adapters はcontentフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academy_backend/internal/feature/content/domain"
	"academy_backend/internal/feature/content/domain/entity"
	"academy_backend/internal/feature/content/usecase"
)

// contentMySQL はContentRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type contentMySQL struct {
	db *gorm.DB
}

// contentMySQLがContentRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ContentRepository = (*contentMySQL)(nil)

// NewContentMySQL は指定されたgorm.DB接続でcontentMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewContentMySQL(db *gorm.DB) *contentMySQL {
	return &contentMySQL{db: db}
}

// GetHero は固定IDのヒーローコンテンツ行を取得します。
// 行が存在しない場合、domain.ErrNotFoundを返します。
func (r *contentMySQL) GetHero(ctx context.Context) (*entity.HeroContent, error) {
	var h entity.HeroContent
	if err := r.db.WithContext(ctx).First(&h, entity.HeroContentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

// SaveHero はヒーローコンテンツ行をupsertします。
// 行が存在しない場合は作成、存在する場合は全フィールドを上書きします。
func (r *contentMySQL) SaveHero(ctx context.Context, hero *entity.HeroContent) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(hero).Error
}

// ListFeatures はすべての特徴をID昇順で返します。
func (r *contentMySQL) ListFeatures(ctx context.Context) ([]entity.Feature, error) {
	var out []entity.Feature
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFeature は特徴をデータベースに追加し、採番されたIDをエンティティに書き戻します。
func (r *contentMySQL) CreateFeature(ctx context.Context, f *entity.Feature) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// UpdateFeature は指定されたIDの特徴を全フィールド上書きで更新します。
// 行が存在しない場合、domain.ErrNotFoundを返します。
func (r *contentMySQL) UpdateFeature(ctx context.Context, f *entity.Feature) error {
	if err := r.exists(ctx, &entity.Feature{}, f.ID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(f).Error
}

// DeleteFeature は指定されたIDの特徴を削除します。
// 行が存在しない場合、domain.ErrNotFoundを返します（2回目の削除は観測上冪等です）。
func (r *contentMySQL) DeleteFeature(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &entity.Feature{}, id)
}

// ListPackages はすべてのパッケージをID昇順で返します。
func (r *contentMySQL) ListPackages(ctx context.Context) ([]entity.Package, error) {
	var out []entity.Package
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePackage はパッケージをデータベースに追加し、採番されたIDをエンティティに書き戻します。
func (r *contentMySQL) CreatePackage(ctx context.Context, p *entity.Package) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// UpdatePackage は指定されたIDのパッケージを全フィールド上書きで更新します。
// 行が存在しない場合、domain.ErrNotFoundを返します。
func (r *contentMySQL) UpdatePackage(ctx context.Context, p *entity.Package) error {
	if err := r.exists(ctx, &entity.Package{}, p.ID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(p).Error
}

// DeletePackage は指定されたIDのパッケージを削除します。
func (r *contentMySQL) DeletePackage(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &entity.Package{}, id)
}

// ListTestimonials はすべての体験談をID昇順で返します。
func (r *contentMySQL) ListTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	var out []entity.Testimonial
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTestimonial は体験談をデータベースに追加し、採番されたIDをエンティティに書き戻します。
func (r *contentMySQL) CreateTestimonial(ctx context.Context, tm *entity.Testimonial) error {
	return r.db.WithContext(ctx).Create(tm).Error
}

// UpdateTestimonial は指定されたIDの体験談を全フィールド上書きで更新します。
// 行が存在しない場合、domain.ErrNotFoundを返します。
func (r *contentMySQL) UpdateTestimonial(ctx context.Context, tm *entity.Testimonial) error {
	if err := r.exists(ctx, &entity.Testimonial{}, tm.ID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(tm).Error
}

// DeleteTestimonial は指定されたIDの体験談を削除します。
func (r *contentMySQL) DeleteTestimonial(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &entity.Testimonial{}, id)
}

// ListFAQs はすべてのFAQをID昇順で返します。
func (r *contentMySQL) ListFAQs(ctx context.Context) ([]entity.FAQ, error) {
	var out []entity.FAQ
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFAQ はFAQをデータベースに追加し、採番されたIDをエンティティに書き戻します。
func (r *contentMySQL) CreateFAQ(ctx context.Context, f *entity.FAQ) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// UpdateFAQ は指定されたIDのFAQを全フィールド上書きで更新します。
// 行が存在しない場合、domain.ErrNotFoundを返します。
func (r *contentMySQL) UpdateFAQ(ctx context.Context, f *entity.FAQ) error {
	if err := r.exists(ctx, &entity.FAQ{}, f.ID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(f).Error
}

// DeleteFAQ は指定されたIDのFAQを削除します。
func (r *contentMySQL) DeleteFAQ(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &entity.FAQ{}, id)
}

// exists は指定されたIDの行が存在するかを確認します。
// 存在しない場合はdomain.ErrNotFoundを返します。
//
// GORMのUpdatesは変更がない更新でもRowsAffected=0を返すため、
// 存在確認は明示的なカウントで行います。
func (r *contentMySQL) exists(ctx context.Context, model any, id uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// deleteByID は指定されたIDの行を削除します。
// 影響行数が0の場合はdomain.ErrNotFoundを返します。
func (r *contentMySQL) deleteByID(ctx context.Context, model any, id uint) error {
	res := r.db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
