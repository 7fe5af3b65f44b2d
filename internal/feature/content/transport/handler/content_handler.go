// Package handler はcontentフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/api"
	"academy_backend/internal/feature/content/domain"
	"academy_backend/internal/feature/content/domain/entity"
)

// ContentUsecase はサイトコンテンツ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ContentUsecase interface {
	GetHero(ctx context.Context) (*entity.HeroContent, error)
	SaveHero(ctx context.Context, hero entity.HeroContent) (*entity.HeroContent, error)

	ListFeatures(ctx context.Context) ([]entity.Feature, error)
	CreateFeature(ctx context.Context, f entity.Feature) (*entity.Feature, error)
	UpdateFeature(ctx context.Context, id uint, f entity.Feature) (*entity.Feature, error)
	DeleteFeature(ctx context.Context, id uint) error

	ListPackages(ctx context.Context) ([]entity.Package, error)
	CreatePackage(ctx context.Context, p entity.Package) (*entity.Package, error)
	UpdatePackage(ctx context.Context, id uint, p entity.Package) (*entity.Package, error)
	DeletePackage(ctx context.Context, id uint) error

	ListTestimonials(ctx context.Context) ([]entity.Testimonial, error)
	CreateTestimonial(ctx context.Context, tm entity.Testimonial) (*entity.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id uint, tm entity.Testimonial) (*entity.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uint) error

	ListFAQs(ctx context.Context) ([]entity.FAQ, error)
	CreateFAQ(ctx context.Context, f entity.FAQ) (*entity.FAQ, error)
	UpdateFAQ(ctx context.Context, id uint, f entity.FAQ) (*entity.FAQ, error)
	DeleteFAQ(ctx context.Context, id uint) error
}

// ContentHandler はサイトコンテンツのHTTPリクエストを処理します。
// 読み取りは公開、ミューテーションはJWT必須のルートグループに接続されます。
type ContentHandler struct {
	uc ContentUsecase
}

// NewContentHandler はContentHandlerの新しいインスタンスを生成します。
func NewContentHandler(uc ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// GetHero はヒーローコンテンツを返します。
// 行が存在しない場合はエラーではなく空オブジェクトを返します。
func (h *ContentHandler) GetHero(c *gin.Context) {
	hero, err := h.uc.GetHero(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		storeError(c, "get hero", err)
		return
	}
	c.JSON(http.StatusOK, hero)
}

// SaveHero はヒーローコンテンツを上書き保存し、保存後の行を返します。
func (h *ContentHandler) SaveHero(c *gin.Context) {
	var req api.HeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "save hero", err)
		return
	}
	hero, err := h.uc.SaveHero(c.Request.Context(), entity.HeroContent{
		Title:          req.Title,
		Subtitle:       req.Subtitle,
		Description:    req.Description,
		WhatsappNumber: req.WhatsappNumber,
	})
	if err != nil {
		storeError(c, "save hero", err)
		return
	}
	c.JSON(http.StatusOK, hero)
}

// ListFeatures はすべての特徴をID昇順で返します。
func (h *ContentHandler) ListFeatures(c *gin.Context) {
	list, err := h.uc.ListFeatures(c.Request.Context())
	if err != nil {
		storeError(c, "list features", err)
		return
	}
	if list == nil {
		list = []entity.Feature{}
	}
	c.JSON(http.StatusOK, list)
}

// CreateFeature は特徴を作成し、採番済みのエンティティを返します。
func (h *ContentHandler) CreateFeature(c *gin.Context) {
	var req api.FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "create feature", err)
		return
	}
	f, err := h.uc.CreateFeature(c.Request.Context(), entity.Feature{
		Icon:        req.Icon,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		storeError(c, "create feature", err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// UpdateFeature は指定されたIDの特徴を更新し、更新後のエンティティを返します。
func (h *ContentHandler) UpdateFeature(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req api.FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "update feature", err)
		return
	}
	f, err := h.uc.UpdateFeature(c.Request.Context(), id, entity.Feature{
		Icon:        req.Icon,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		mutationError(c, "update feature", err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// DeleteFeature は指定されたIDの特徴を削除します。
func (h *ContentHandler) DeleteFeature(c *gin.Context) {
	h.deleteByID(c, "delete feature", h.uc.DeleteFeature)
}

// ListPackages はすべてのパッケージをID昇順で返します。
func (h *ContentHandler) ListPackages(c *gin.Context) {
	list, err := h.uc.ListPackages(c.Request.Context())
	if err != nil {
		storeError(c, "list packages", err)
		return
	}
	if list == nil {
		list = []entity.Package{}
	}
	c.JSON(http.StatusOK, list)
}

// CreatePackage はパッケージを作成し、採番済みのエンティティを返します。
func (h *ContentHandler) CreatePackage(c *gin.Context) {
	var req api.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "create package", err)
		return
	}
	p, err := h.uc.CreatePackage(c.Request.Context(), packageFromRequest(req))
	if err != nil {
		storeError(c, "create package", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdatePackage は指定されたIDのパッケージを更新し、更新後のエンティティを返します。
func (h *ContentHandler) UpdatePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req api.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "update package", err)
		return
	}
	p, err := h.uc.UpdatePackage(c.Request.Context(), id, packageFromRequest(req))
	if err != nil {
		mutationError(c, "update package", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePackage は指定されたIDのパッケージを削除します。
func (h *ContentHandler) DeletePackage(c *gin.Context) {
	h.deleteByID(c, "delete package", h.uc.DeletePackage)
}

// ListTestimonials はすべての体験談をID昇順で返します。
func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	list, err := h.uc.ListTestimonials(c.Request.Context())
	if err != nil {
		storeError(c, "list testimonials", err)
		return
	}
	if list == nil {
		list = []entity.Testimonial{}
	}
	c.JSON(http.StatusOK, list)
}

// CreateTestimonial は体験談を作成し、採番済みのエンティティを返します。
func (h *ContentHandler) CreateTestimonial(c *gin.Context) {
	var req api.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "create testimonial", err)
		return
	}
	tm, err := h.uc.CreateTestimonial(c.Request.Context(), entity.Testimonial{
		Name:    req.Name,
		Role:    req.Role,
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		storeError(c, "create testimonial", err)
		return
	}
	c.JSON(http.StatusCreated, tm)
}

// UpdateTestimonial は指定されたIDの体験談を更新し、更新後のエンティティを返します。
func (h *ContentHandler) UpdateTestimonial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req api.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "update testimonial", err)
		return
	}
	tm, err := h.uc.UpdateTestimonial(c.Request.Context(), id, entity.Testimonial{
		Name:    req.Name,
		Role:    req.Role,
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		mutationError(c, "update testimonial", err)
		return
	}
	c.JSON(http.StatusOK, tm)
}

// DeleteTestimonial は指定されたIDの体験談を削除します。
func (h *ContentHandler) DeleteTestimonial(c *gin.Context) {
	h.deleteByID(c, "delete testimonial", h.uc.DeleteTestimonial)
}

// ListFAQs はすべてのFAQをID昇順で返します。
func (h *ContentHandler) ListFAQs(c *gin.Context) {
	list, err := h.uc.ListFAQs(c.Request.Context())
	if err != nil {
		storeError(c, "list faqs", err)
		return
	}
	if list == nil {
		list = []entity.FAQ{}
	}
	c.JSON(http.StatusOK, list)
}

// CreateFAQ はFAQを作成し、採番済みのエンティティを返します。
func (h *ContentHandler) CreateFAQ(c *gin.Context) {
	var req api.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "create faq", err)
		return
	}
	f, err := h.uc.CreateFAQ(c.Request.Context(), entity.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		storeError(c, "create faq", err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// UpdateFAQ は指定されたIDのFAQを更新し、更新後のエンティティを返します。
func (h *ContentHandler) UpdateFAQ(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req api.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "update faq", err)
		return
	}
	f, err := h.uc.UpdateFAQ(c.Request.Context(), id, entity.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		mutationError(c, "update faq", err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// DeleteFAQ は指定されたIDのFAQを削除します。
func (h *ContentHandler) DeleteFAQ(c *gin.Context) {
	h.deleteByID(c, "delete faq", h.uc.DeleteFAQ)
}

// deleteByID は削除エンドポイントの共通処理です。
func (h *ContentHandler) deleteByID(c *gin.Context, op string, del func(ctx context.Context, id uint) error) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := del(c.Request.Context(), id); err != nil {
		mutationError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "deleted"})
}

// packageFromRequest はリクエストDTOをドメインエンティティに変換します。
func packageFromRequest(req api.PackageRequest) entity.Package {
	return entity.Package{
		Name:        req.Name,
		Price:       req.Price,
		Amount:      req.Amount,
		Description: req.Description,
		Features:    entity.StringList(req.Features),
		Popular:     req.Popular,
	}
}

// pathID はURLパスの:idパラメータをパースします。
// 不正な値の場合は400を返し、falseを返します。
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// badRequest はバリデーション失敗時の400レスポンスを返します。
func badRequest(c *gin.Context, op string, err error) {
	slog.Warn("content request validation failed", "op", op, "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
}

// mutationError はミューテーション失敗を404または500に振り分けます。
func mutationError(c *gin.Context, op string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "not found"})
		return
	}
	storeError(c, op, err)
}

// storeError はストア起因の失敗を統一レスポンスで返します。
// 生のエラーテキストはログにのみ出力し、レスポンスには分類のみを載せます。
func storeError(c *gin.Context, op string, err error) {
	slog.Error("content store operation failed", "op", op, "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{
		Message: "Database query error",
		Error:   "database error",
	})
}
