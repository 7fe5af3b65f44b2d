package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"academy_backend/internal/feature/content/domain"
	"academy_backend/internal/feature/content/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(
		&entity.HeroContent{},
		&entity.Feature{},
		&entity.Package{},
		&entity.Testimonial{},
		&entity.FAQ{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestNewContentMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewContentMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestContentMySQL_Hero(t *testing.T) {
	t.Run("missing row returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		hero, err := repo.GetHero(context.Background())

		assert.Nil(t, hero, "hero should be nil")
		assert.ErrorIs(t, err, domain.ErrNotFound, "should return ErrNotFound")
	})

	t.Run("save inserts the singleton row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		hero := &entity.HeroContent{
			ID:             entity.HeroContentID,
			Title:          "Belajar Trading",
			Subtitle:       "Dari Nol",
			Description:    "Kelas trading untuk pemula",
			WhatsappNumber: "+62812345678",
		}
		err := repo.SaveHero(context.Background(), hero)
		require.NoError(t, err, "failed to save hero")

		found, err := repo.GetHero(context.Background())
		require.NoError(t, err, "failed to load hero")
		assert.Equal(t, entity.HeroContentID, found.ID, "ID does not match")
		assert.Equal(t, "Belajar Trading", found.Title, "title does not match")
		assert.Equal(t, "+62812345678", found.WhatsappNumber, "whatsapp number does not match")
	})

	t.Run("save overwrites the existing row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		first := &entity.HeroContent{ID: entity.HeroContentID, Title: "Old Title", Subtitle: "Old"}
		require.NoError(t, repo.SaveHero(context.Background(), first), "failed to save first hero")

		second := &entity.HeroContent{ID: entity.HeroContentID, Title: "New Title"}
		require.NoError(t, repo.SaveHero(context.Background(), second), "failed to overwrite hero")

		found, err := repo.GetHero(context.Background())
		require.NoError(t, err, "failed to load hero")
		assert.Equal(t, "New Title", found.Title, "title was not overwritten")
		assert.Empty(t, found.Subtitle, "subtitle should be overwritten with empty value")

		var count int64
		require.NoError(t, db.Model(&entity.HeroContent{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "hero must remain a single row")
	})
}

func TestContentMySQL_Features(t *testing.T) {
	t.Run("create assigns id and list preserves insertion order", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		items := []*entity.Feature{
			{Icon: "TrendingUp", Title: "Analisa Teknikal", Description: "Belajar membaca chart"},
			{Icon: "Shield", Title: "Money Management", Description: "Kelola risiko"},
			{Icon: "Users", Title: "Komunitas", Description: "Grup diskusi member"},
		}
		for _, f := range items {
			require.NoError(t, repo.CreateFeature(context.Background(), f), "failed to create feature")
			assert.NotZero(t, f.ID, "ID is not set")
		}

		found, err := repo.ListFeatures(context.Background())
		require.NoError(t, err, "failed to list features")
		require.Len(t, found, 3, "unexpected feature count")
		assert.Equal(t, "Analisa Teknikal", found[0].Title, "insertion order is not preserved")
		assert.Equal(t, "Komunitas", found[2].Title, "insertion order is not preserved")
	})

	t.Run("update overwrites all fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		f := &entity.Feature{Icon: "TrendingUp", Title: "Old", Description: "old text"}
		require.NoError(t, repo.CreateFeature(context.Background(), f), "failed to create feature")

		f.Title = "New"
		f.Description = "new text"
		require.NoError(t, repo.UpdateFeature(context.Background(), f), "failed to update feature")

		found, err := repo.ListFeatures(context.Background())
		require.NoError(t, err, "failed to list features")
		require.Len(t, found, 1)
		assert.Equal(t, "New", found[0].Title, "title was not updated")
		assert.Equal(t, "new text", found[0].Description, "description was not updated")
	})

	t.Run("update of missing id returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		err := repo.UpdateFeature(context.Background(), &entity.Feature{ID: 999, Icon: "X", Title: "x", Description: "x"})

		assert.ErrorIs(t, err, domain.ErrNotFound, "should return ErrNotFound")
	})

	t.Run("delete removes row and second delete returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		f := &entity.Feature{Icon: "Shield", Title: "t", Description: "d"}
		require.NoError(t, repo.CreateFeature(context.Background(), f), "failed to create feature")

		require.NoError(t, repo.DeleteFeature(context.Background(), f.ID), "failed to delete feature")

		found, err := repo.ListFeatures(context.Background())
		require.NoError(t, err)
		assert.Empty(t, found, "feature was not removed")

		err = repo.DeleteFeature(context.Background(), f.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound, "second delete should return ErrNotFound")
	})
}

func TestContentMySQL_Packages(t *testing.T) {
	t.Run("features list survives a JSON round trip", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		p := &entity.Package{
			Name:     "Paket Premium",
			Price:    "Rp 500.000",
			Amount:   500000,
			Features: entity.StringList{"A", "B", "C"},
			Popular:  true,
		}
		require.NoError(t, repo.CreatePackage(context.Background(), p), "failed to create package")

		found, err := repo.ListPackages(context.Background())
		require.NoError(t, err, "failed to list packages")
		require.Len(t, found, 1)
		assert.Equal(t, entity.StringList{"A", "B", "C"}, found[0].Features, "features list does not survive round trip")
		assert.True(t, found[0].Popular, "popular flag does not survive round trip")
		assert.Equal(t, "Rp 500.000", found[0].Price, "display price does not match")
		assert.Equal(t, float64(500000), found[0].Amount, "amount does not match")
	})

	t.Run("empty features list round trips as empty, not nil JSON", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		p := &entity.Package{Name: "Basic", Price: "Rp 50.000"}
		require.NoError(t, repo.CreatePackage(context.Background(), p), "failed to create package")

		found, err := repo.ListPackages(context.Background())
		require.NoError(t, err, "failed to list packages")
		require.Len(t, found, 1)
		assert.Empty(t, found[0].Features, "features should be empty")
	})

	t.Run("update of missing id returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		err := repo.UpdatePackage(context.Background(), &entity.Package{ID: 42, Name: "x", Price: "x"})

		assert.ErrorIs(t, err, domain.ErrNotFound, "should return ErrNotFound")
	})

	t.Run("delete of missing id returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		err := repo.DeletePackage(context.Background(), 42)

		assert.ErrorIs(t, err, domain.ErrNotFound, "should return ErrNotFound")
	})
}

func TestContentMySQL_Testimonials(t *testing.T) {
	t.Run("create and list in insertion order", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		items := []*entity.Testimonial{
			{Name: "Budi", Role: "Karyawan", Content: "Sangat membantu", Rating: 5},
			{Name: "Sari", Role: "Mahasiswa", Content: "Materi jelas", Rating: 4},
		}
		for _, tm := range items {
			require.NoError(t, repo.CreateTestimonial(context.Background(), tm), "failed to create testimonial")
		}

		found, err := repo.ListTestimonials(context.Background())
		require.NoError(t, err, "failed to list testimonials")
		require.Len(t, found, 2)
		assert.Equal(t, "Budi", found[0].Name, "insertion order is not preserved")
		assert.Equal(t, 4, found[1].Rating, "rating does not match")
	})

	t.Run("update overwrites and missing id returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		tm := &entity.Testimonial{Name: "Budi", Content: "Lama", Rating: 3}
		require.NoError(t, repo.CreateTestimonial(context.Background(), tm), "failed to create testimonial")

		tm.Content = "Baru"
		require.NoError(t, repo.UpdateTestimonial(context.Background(), tm), "failed to update testimonial")

		found, err := repo.ListTestimonials(context.Background())
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Baru", found[0].Content, "content was not updated")

		err = repo.UpdateTestimonial(context.Background(), &entity.Testimonial{ID: 99, Name: "x", Content: "x", Rating: 5})
		assert.ErrorIs(t, err, domain.ErrNotFound, "should return ErrNotFound")
	})
}

func TestContentMySQL_FAQs(t *testing.T) {
	t.Run("full lifecycle", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContentMySQL(db)

		f := &entity.FAQ{Question: "Apakah cocok untuk pemula?", Answer: "Ya, materi dari dasar."}
		require.NoError(t, repo.CreateFAQ(context.Background(), f), "failed to create faq")
		assert.NotZero(t, f.ID, "ID is not set")

		f.Answer = "Ya, kelas dimulai dari nol."
		require.NoError(t, repo.UpdateFAQ(context.Background(), f), "failed to update faq")

		found, err := repo.ListFAQs(context.Background())
		require.NoError(t, err, "failed to list faqs")
		require.Len(t, found, 1)
		assert.Equal(t, "Ya, kelas dimulai dari nol.", found[0].Answer, "answer was not updated")

		require.NoError(t, repo.DeleteFAQ(context.Background(), f.ID), "failed to delete faq")
		err = repo.DeleteFAQ(context.Background(), f.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound, "second delete should return ErrNotFound")
	})
}
