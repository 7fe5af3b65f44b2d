package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy_backend/internal/feature/content/domain"
	"academy_backend/internal/feature/content/domain/entity"
)

// mockContentUsecase is a func-field mock of the ContentUsecase interface.
type mockContentUsecase struct {
	GetHeroFunc  func(ctx context.Context) (*entity.HeroContent, error)
	SaveHeroFunc func(ctx context.Context, hero entity.HeroContent) (*entity.HeroContent, error)

	ListFeaturesFunc  func(ctx context.Context) ([]entity.Feature, error)
	CreateFeatureFunc func(ctx context.Context, f entity.Feature) (*entity.Feature, error)
	UpdateFeatureFunc func(ctx context.Context, id uint, f entity.Feature) (*entity.Feature, error)
	DeleteFeatureFunc func(ctx context.Context, id uint) error

	ListPackagesFunc  func(ctx context.Context) ([]entity.Package, error)
	CreatePackageFunc func(ctx context.Context, p entity.Package) (*entity.Package, error)
	UpdatePackageFunc func(ctx context.Context, id uint, p entity.Package) (*entity.Package, error)
	DeletePackageFunc func(ctx context.Context, id uint) error

	ListTestimonialsFunc  func(ctx context.Context) ([]entity.Testimonial, error)
	CreateTestimonialFunc func(ctx context.Context, tm entity.Testimonial) (*entity.Testimonial, error)
	UpdateTestimonialFunc func(ctx context.Context, id uint, tm entity.Testimonial) (*entity.Testimonial, error)
	DeleteTestimonialFunc func(ctx context.Context, id uint) error

	ListFAQsFunc  func(ctx context.Context) ([]entity.FAQ, error)
	CreateFAQFunc func(ctx context.Context, f entity.FAQ) (*entity.FAQ, error)
	UpdateFAQFunc func(ctx context.Context, id uint, f entity.FAQ) (*entity.FAQ, error)
	DeleteFAQFunc func(ctx context.Context, id uint) error
}

var _ ContentUsecase = (*mockContentUsecase)(nil)

func (m *mockContentUsecase) GetHero(ctx context.Context) (*entity.HeroContent, error) {
	if m.GetHeroFunc != nil {
		return m.GetHeroFunc(ctx)
	}
	return nil, domain.ErrNotFound
}

func (m *mockContentUsecase) SaveHero(ctx context.Context, hero entity.HeroContent) (*entity.HeroContent, error) {
	if m.SaveHeroFunc != nil {
		return m.SaveHeroFunc(ctx, hero)
	}
	hero.ID = entity.HeroContentID
	return &hero, nil
}

func (m *mockContentUsecase) ListFeatures(ctx context.Context) ([]entity.Feature, error) {
	if m.ListFeaturesFunc != nil {
		return m.ListFeaturesFunc(ctx)
	}
	return nil, nil
}

func (m *mockContentUsecase) CreateFeature(ctx context.Context, f entity.Feature) (*entity.Feature, error) {
	if m.CreateFeatureFunc != nil {
		return m.CreateFeatureFunc(ctx, f)
	}
	f.ID = 1
	return &f, nil
}

func (m *mockContentUsecase) UpdateFeature(ctx context.Context, id uint, f entity.Feature) (*entity.Feature, error) {
	if m.UpdateFeatureFunc != nil {
		return m.UpdateFeatureFunc(ctx, id, f)
	}
	f.ID = id
	return &f, nil
}

func (m *mockContentUsecase) DeleteFeature(ctx context.Context, id uint) error {
	if m.DeleteFeatureFunc != nil {
		return m.DeleteFeatureFunc(ctx, id)
	}
	return nil
}

func (m *mockContentUsecase) ListPackages(ctx context.Context) ([]entity.Package, error) {
	if m.ListPackagesFunc != nil {
		return m.ListPackagesFunc(ctx)
	}
	return nil, nil
}

func (m *mockContentUsecase) CreatePackage(ctx context.Context, p entity.Package) (*entity.Package, error) {
	if m.CreatePackageFunc != nil {
		return m.CreatePackageFunc(ctx, p)
	}
	p.ID = 1
	return &p, nil
}

func (m *mockContentUsecase) UpdatePackage(ctx context.Context, id uint, p entity.Package) (*entity.Package, error) {
	if m.UpdatePackageFunc != nil {
		return m.UpdatePackageFunc(ctx, id, p)
	}
	p.ID = id
	return &p, nil
}

func (m *mockContentUsecase) DeletePackage(ctx context.Context, id uint) error {
	if m.DeletePackageFunc != nil {
		return m.DeletePackageFunc(ctx, id)
	}
	return nil
}

func (m *mockContentUsecase) ListTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	if m.ListTestimonialsFunc != nil {
		return m.ListTestimonialsFunc(ctx)
	}
	return nil, nil
}

func (m *mockContentUsecase) CreateTestimonial(ctx context.Context, tm entity.Testimonial) (*entity.Testimonial, error) {
	if m.CreateTestimonialFunc != nil {
		return m.CreateTestimonialFunc(ctx, tm)
	}
	tm.ID = 1
	return &tm, nil
}

func (m *mockContentUsecase) UpdateTestimonial(ctx context.Context, id uint, tm entity.Testimonial) (*entity.Testimonial, error) {
	if m.UpdateTestimonialFunc != nil {
		return m.UpdateTestimonialFunc(ctx, id, tm)
	}
	tm.ID = id
	return &tm, nil
}

func (m *mockContentUsecase) DeleteTestimonial(ctx context.Context, id uint) error {
	if m.DeleteTestimonialFunc != nil {
		return m.DeleteTestimonialFunc(ctx, id)
	}
	return nil
}

func (m *mockContentUsecase) ListFAQs(ctx context.Context) ([]entity.FAQ, error) {
	if m.ListFAQsFunc != nil {
		return m.ListFAQsFunc(ctx)
	}
	return nil, nil
}

func (m *mockContentUsecase) CreateFAQ(ctx context.Context, f entity.FAQ) (*entity.FAQ, error) {
	if m.CreateFAQFunc != nil {
		return m.CreateFAQFunc(ctx, f)
	}
	f.ID = 1
	return &f, nil
}

func (m *mockContentUsecase) UpdateFAQ(ctx context.Context, id uint, f entity.FAQ) (*entity.FAQ, error) {
	if m.UpdateFAQFunc != nil {
		return m.UpdateFAQFunc(ctx, id, f)
	}
	f.ID = id
	return &f, nil
}

func (m *mockContentUsecase) DeleteFAQ(ctx context.Context, id uint) error {
	if m.DeleteFAQFunc != nil {
		return m.DeleteFAQFunc(ctx, id)
	}
	return nil
}

// newTestRouter registers all content routes without auth middleware.
func newTestRouter(mockUC *mockContentUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContentHandler(mockUC)

	r := gin.New()
	r.GET("/api/hero", h.GetHero)
	r.PUT("/api/hero", h.SaveHero)
	r.GET("/api/features", h.ListFeatures)
	r.POST("/api/features", h.CreateFeature)
	r.PUT("/api/features/:id", h.UpdateFeature)
	r.DELETE("/api/features/:id", h.DeleteFeature)
	r.GET("/api/packages", h.ListPackages)
	r.POST("/api/packages", h.CreatePackage)
	r.PUT("/api/packages/:id", h.UpdatePackage)
	r.DELETE("/api/packages/:id", h.DeletePackage)
	r.GET("/api/testimonials", h.ListTestimonials)
	r.POST("/api/testimonials", h.CreateTestimonial)
	r.GET("/api/faqs", h.ListFAQs)
	r.POST("/api/faqs", h.CreateFAQ)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContentHandler_GetHero(t *testing.T) {
	t.Run("existing row is returned", func(t *testing.T) {
		mockUC := &mockContentUsecase{
			GetHeroFunc: func(ctx context.Context) (*entity.HeroContent, error) {
				return &entity.HeroContent{ID: entity.HeroContentID, Title: "Belajar Trading"}, nil
			},
		}
		r := newTestRouter(mockUC)

		w := doJSON(t, r, http.MethodGet, "/api/hero", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var body gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Belajar Trading", body["title"])
	})

	t.Run("missing row yields empty object, not an error", func(t *testing.T) {
		r := newTestRouter(&mockContentUsecase{})

		w := doJSON(t, r, http.MethodGet, "/api/hero", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{}`, w.Body.String())
	})

	t.Run("store failure yields sanitized 500", func(t *testing.T) {
		mockUC := &mockContentUsecase{
			GetHeroFunc: func(ctx context.Context) (*entity.HeroContent, error) {
				return nil, errors.New("dial tcp 10.0.0.5:3306: connect: connection refused")
			},
		}
		r := newTestRouter(mockUC)

		w := doJSON(t, r, http.MethodGet, "/api/hero", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Database query error","error":"database error"}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "10.0.0.5", "raw error must not leak to the client")
	})
}

func TestContentHandler_SaveHero(t *testing.T) {
	t.Run("stored row is echoed back", func(t *testing.T) {
		r := newTestRouter(&mockContentUsecase{})

		w := doJSON(t, r, http.MethodPut, "/api/hero", gin.H{
			"title":          "Belajar Trading",
			"subtitle":       "Dari Nol",
			"whatsappNumber": "+62812345678",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var body gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(entity.HeroContentID), body["id"], "returned row must carry the singleton id")
		assert.Equal(t, "+62812345678", body["whatsappNumber"])
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		called := false
		mockUC := &mockContentUsecase{
			SaveHeroFunc: func(ctx context.Context, hero entity.HeroContent) (*entity.HeroContent, error) {
				called = true
				return &hero, nil
			},
		}
		r := newTestRouter(mockUC)

		w := doJSON(t, r, http.MethodPut, "/api/hero", gin.H{"subtitle": "only subtitle"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"invalid request"}`, w.Body.String())
		assert.False(t, called, "usecase must not be called on validation failure")
	})
}

func TestContentHandler_Lists(t *testing.T) {
	t.Run("nil collection is rendered as empty array", func(t *testing.T) {
		r := newTestRouter(&mockContentUsecase{})

		for _, path := range []string{"/api/features", "/api/packages", "/api/testimonials", "/api/faqs"} {
			w := doJSON(t, r, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.JSONEq(t, `[]`, w.Body.String(), path)
		}
	})

	t.Run("rows are returned in stored order", func(t *testing.T) {
		mockUC := &mockContentUsecase{
			ListFeaturesFunc: func(ctx context.Context) ([]entity.Feature, error) {
				return []entity.Feature{
					{ID: 1, Icon: "TrendingUp", Title: "Analisa", Description: "d"},
					{ID: 2, Icon: "Shield", Title: "Risiko", Description: "d"},
				}, nil
			},
		}
		r := newTestRouter(mockUC)

		w := doJSON(t, r, http.MethodGet, "/api/features", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var list []entity.Feature
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 2)
		assert.Equal(t, uint(1), list[0].ID)
		assert.Equal(t, "Risiko", list[1].Title)
	})
}

func TestContentHandler_CreateFeature(t *testing.T) {
	t.Run("created entity with assigned id is returned", func(t *testing.T) {
		r := newTestRouter(&mockContentUsecase{})

		w := doJSON(t, r, http.MethodPost, "/api/features", gin.H{
			"icon":        "TrendingUp",
			"title":       "Analisa Teknikal",
			"description": "Belajar membaca chart",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		var created entity.Feature
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotZero(t, created.ID, "assigned id must be returned")
		assert.Equal(t, "Analisa Teknikal", created.Title)
	})

	t.Run("missing required fields are rejected", func(t *testing.T) {
		r := newTestRouter(&mockContentUsecase{})

		w := doJSON(t, r, http.MethodPost, "/api/features", gin.H{"icon": "Shield"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"invalid request"}`, w.Body.String())
	})
}

func TestContentHandler_UpdateFeature(t *testing.T) {
	t.Run("unknown id yields 404", func(t *testing.T) {
		mockUC := &mockContentUsecase{
			UpdateFeatureFunc: func(ctx context.Context, id uint, f entity.Feature) (*entity.Feature, error) {
				return nil, domain.ErrNotFound
			},
		}
		r := newTestRouter(mockUC)

		w := doJSON(t, r, http.MethodPut, "/api/features/999", gin.H{
			"icon": "X", "title": "t", "description": "d",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"not found"}`, w.Body.String())
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		r := newTestRouter(&mockContentUsecase{})

		w := doJSON(t, r, http.MethodPut, "/api/features/abc", gin.H{
			"icon": "X", "title": "t", "description": "d",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"invalid id"}`, w.Body.String())
	})

	t.Run("path id is forwarded to the usecase", func(t *testing.T) {
		var gotID uint
		mockUC := &mockContentUsecase{
			UpdateFeatureFunc: func(ctx context.Context, id uint, f entity.Feature) (*entity.Feature, error) {
				gotID = id
				f.ID = id
				return &f, nil
			},
		}
		r := newTestRouter(mockUC)

		w := doJSON(t, r, http.MethodPut, "/api/features/5", gin.H{
			"icon": "Shield", "title": "t", "description": "d",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(5), gotID)
	})
}

func TestContentHandler_DeleteFeature(t *testing.T) {
	t.Run("successful delete returns confirmation", func(t *testing.T) {
		r := newTestRouter(&mockContentUsecase{})

		w := doJSON(t, r, http.MethodDelete, "/api/features/3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"deleted"}`, w.Body.String())
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		mockUC := &mockContentUsecase{
			DeleteFeatureFunc: func(ctx context.Context, id uint) error {
				return domain.ErrNotFound
			},
		}
		r := newTestRouter(mockUC)

		w := doJSON(t, r, http.MethodDelete, "/api/features/3", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"not found"}`, w.Body.String())
	})
}

func TestContentHandler_CreatePackage(t *testing.T) {
	t.Run("features list and flags survive the round trip", func(t *testing.T) {
		var got entity.Package
		mockUC := &mockContentUsecase{
			CreatePackageFunc: func(ctx context.Context, p entity.Package) (*entity.Package, error) {
				got = p
				p.ID = 9
				return &p, nil
			},
		}
		r := newTestRouter(mockUC)

		w := doJSON(t, r, http.MethodPost, "/api/packages", gin.H{
			"name":     "Paket Premium",
			"price":    "Rp 500.000",
			"amount":   500000,
			"features": []string{"A", "B"},
			"popular":  true,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, entity.StringList{"A", "B"}, got.Features)
		assert.True(t, got.Popular)
		assert.Equal(t, float64(500000), got.Amount)

		var created entity.Package
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, uint(9), created.ID)
	})
}
