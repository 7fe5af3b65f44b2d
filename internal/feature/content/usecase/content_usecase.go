// Package usecase はcontentフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"academy_backend/internal/feature/content/domain/entity"
)

// ContentRepository はサイトコンテンツの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// すべてのList系メソッドはID昇順（=挿入順）で全件を返します。
type ContentRepository interface {
	// GetHero は固定IDのヒーローコンテンツ行を取得します。
	// 行が存在しない場合、domain.ErrNotFoundを返します。
	GetHero(ctx context.Context) (*entity.HeroContent, error)
	// SaveHero はヒーローコンテンツ行をupsertします。IDは常に固定値です。
	SaveHero(ctx context.Context, hero *entity.HeroContent) error

	ListFeatures(ctx context.Context) ([]entity.Feature, error)
	CreateFeature(ctx context.Context, f *entity.Feature) error
	UpdateFeature(ctx context.Context, f *entity.Feature) error
	DeleteFeature(ctx context.Context, id uint) error

	ListPackages(ctx context.Context) ([]entity.Package, error)
	CreatePackage(ctx context.Context, p *entity.Package) error
	UpdatePackage(ctx context.Context, p *entity.Package) error
	DeletePackage(ctx context.Context, id uint) error

	ListTestimonials(ctx context.Context) ([]entity.Testimonial, error)
	CreateTestimonial(ctx context.Context, tm *entity.Testimonial) error
	UpdateTestimonial(ctx context.Context, tm *entity.Testimonial) error
	DeleteTestimonial(ctx context.Context, id uint) error

	ListFAQs(ctx context.Context) ([]entity.FAQ, error)
	CreateFAQ(ctx context.Context, f *entity.FAQ) error
	UpdateFAQ(ctx context.Context, f *entity.FAQ) error
	DeleteFAQ(ctx context.Context, id uint) error
}

// contentUsecase はサイトコンテンツ操作のユースケースを実装します。
// ミューテーションは保存後の正となるエンティティを返し、クライアント側の
// 状態遷移にそのまま適用できるようにします。
type contentUsecase struct {
	repo ContentRepository
}

// NewContentUsecase はcontentUsecaseの新しいインスタンスを生成します。
func NewContentUsecase(repo ContentRepository) *contentUsecase {
	return &contentUsecase{repo: repo}
}

// GetHero はヒーローコンテンツを取得します。
// 行が存在しない場合はdomain.ErrNotFoundをそのまま伝播します。
func (u *contentUsecase) GetHero(ctx context.Context) (*entity.HeroContent, error) {
	return u.repo.GetHero(ctx)
}

// SaveHero はヒーローコンテンツを上書き保存し、保存後の行を返します。
// IDは固定値に強制されるため、upsertは純粋な更新に縮退します。
func (u *contentUsecase) SaveHero(ctx context.Context, hero entity.HeroContent) (*entity.HeroContent, error) {
	hero.ID = entity.HeroContentID
	if err := u.repo.SaveHero(ctx, &hero); err != nil {
		return nil, err
	}
	return &hero, nil
}

// ListFeatures はすべての特徴をID昇順で返します。
func (u *contentUsecase) ListFeatures(ctx context.Context) ([]entity.Feature, error) {
	return u.repo.ListFeatures(ctx)
}

// CreateFeature は新しい特徴を作成し、採番済みのエンティティを返します。
func (u *contentUsecase) CreateFeature(ctx context.Context, f entity.Feature) (*entity.Feature, error) {
	f.ID = 0
	if err := u.repo.CreateFeature(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// UpdateFeature は指定されたIDの特徴を更新し、更新後のエンティティを返します。
func (u *contentUsecase) UpdateFeature(ctx context.Context, id uint, f entity.Feature) (*entity.Feature, error) {
	f.ID = id
	if err := u.repo.UpdateFeature(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteFeature は指定されたIDの特徴を削除します。
func (u *contentUsecase) DeleteFeature(ctx context.Context, id uint) error {
	return u.repo.DeleteFeature(ctx, id)
}

// ListPackages はすべてのパッケージをID昇順で返します。
func (u *contentUsecase) ListPackages(ctx context.Context) ([]entity.Package, error) {
	return u.repo.ListPackages(ctx)
}

// CreatePackage は新しいパッケージを作成し、採番済みのエンティティを返します。
// 特典リストの空白のみのエントリは保存前に取り除かれます。
func (u *contentUsecase) CreatePackage(ctx context.Context, p entity.Package) (*entity.Package, error) {
	p.ID = 0
	p.Features = pruneBlank(p.Features)
	if err := u.repo.CreatePackage(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePackage は指定されたIDのパッケージを更新し、更新後のエンティティを返します。
func (u *contentUsecase) UpdatePackage(ctx context.Context, id uint, p entity.Package) (*entity.Package, error) {
	p.ID = id
	p.Features = pruneBlank(p.Features)
	if err := u.repo.UpdatePackage(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePackage は指定されたIDのパッケージを削除します。
func (u *contentUsecase) DeletePackage(ctx context.Context, id uint) error {
	return u.repo.DeletePackage(ctx, id)
}

// ListTestimonials はすべての体験談をID昇順で返します。
func (u *contentUsecase) ListTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	return u.repo.ListTestimonials(ctx)
}

// CreateTestimonial は新しい体験談を作成し、採番済みのエンティティを返します。
// 評価が未指定（0以下）の場合はデフォルトの5が設定されます。
func (u *contentUsecase) CreateTestimonial(ctx context.Context, tm entity.Testimonial) (*entity.Testimonial, error) {
	tm.ID = 0
	if tm.Rating <= 0 {
		tm.Rating = 5
	}
	if err := u.repo.CreateTestimonial(ctx, &tm); err != nil {
		return nil, err
	}
	return &tm, nil
}

// UpdateTestimonial は指定されたIDの体験談を更新し、更新後のエンティティを返します。
func (u *contentUsecase) UpdateTestimonial(ctx context.Context, id uint, tm entity.Testimonial) (*entity.Testimonial, error) {
	tm.ID = id
	if tm.Rating <= 0 {
		tm.Rating = 5
	}
	if err := u.repo.UpdateTestimonial(ctx, &tm); err != nil {
		return nil, err
	}
	return &tm, nil
}

// DeleteTestimonial は指定されたIDの体験談を削除します。
func (u *contentUsecase) DeleteTestimonial(ctx context.Context, id uint) error {
	return u.repo.DeleteTestimonial(ctx, id)
}

// ListFAQs はすべてのFAQをID昇順で返します。
func (u *contentUsecase) ListFAQs(ctx context.Context) ([]entity.FAQ, error) {
	return u.repo.ListFAQs(ctx)
}

// CreateFAQ は新しいFAQを作成し、採番済みのエンティティを返します。
func (u *contentUsecase) CreateFAQ(ctx context.Context, f entity.FAQ) (*entity.FAQ, error) {
	f.ID = 0
	if err := u.repo.CreateFAQ(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// UpdateFAQ は指定されたIDのFAQを更新し、更新後のエンティティを返します。
func (u *contentUsecase) UpdateFAQ(ctx context.Context, id uint, f entity.FAQ) (*entity.FAQ, error) {
	f.ID = id
	if err := u.repo.UpdateFAQ(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteFAQ は指定されたIDのFAQを削除します。
func (u *contentUsecase) DeleteFAQ(ctx context.Context, id uint) error {
	return u.repo.DeleteFAQ(ctx, id)
}

// pruneBlank は空白のみの要素を取り除いた新しいリストを返します。
// 要素の順序は保持されます。
func pruneBlank(in entity.StringList) entity.StringList {
	out := make(entity.StringList, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
