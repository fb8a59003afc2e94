package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditsaputra/academy/internal/models"
	"github.com/aditsaputra/academy/internal/store"
	pkglogger "github.com/aditsaputra/academy/pkg/logger"
)

const testUserID = "user-1"

func newContentService(t *testing.T, st store.Store) *ContentService {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return NewContentService(context.Background(), st, logger, pkglogger.NewAuditLogger(logger))
}

func TestContentSeedsDefaults(t *testing.T) {
	svc := newContentService(t, store.NewMemoryStore())

	content := svc.Content()
	assert.Equal(t, "Trading Crypto Academy", content.Hero.Subtitle)
	assert.Len(t, content.Features, 6)
	assert.Len(t, content.Packages, 3)
	assert.Len(t, content.Testimonials, 6)
	assert.Len(t, content.FAQs, 8)
}

func TestContentSeedsDefaultsOnCorruptBlob(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, store.KeyContent, []byte("{broken")))

	svc := newContentService(t, st)
	assert.Equal(t, models.DefaultContent().Hero, svc.Content().Hero)
}

func TestContentLoadsPersistedBlob(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	first := newContentService(t, st)
	require.NoError(t, first.UpdateHero(ctx, testUserID, models.HeroContent{
		Title:          "Judul Baru",
		Subtitle:       "Subjudul",
		Description:    "Deskripsi",
		WhatsappNumber: "628111222333",
	}))

	second := newContentService(t, st)
	assert.Equal(t, "Judul Baru", second.Content().Hero.Title)
}

func TestContentSnapshotIsIsolated(t *testing.T) {
	svc := newContentService(t, store.NewMemoryStore())

	snap := svc.Content()
	snap.Hero.Title = "mutated"
	snap.Features[0].Title = "mutated"

	fresh := svc.Content()
	assert.NotEqual(t, "mutated", fresh.Hero.Title)
	assert.NotEqual(t, "mutated", fresh.Features[0].Title)
}

func TestUpdateHeroSanitizes(t *testing.T) {
	svc := newContentService(t, store.NewMemoryStore())

	err := svc.UpdateHero(context.Background(), testUserID, models.HeroContent{
		Title:          `<script>Judul</script>`,
		Subtitle:       "  Subjudul  ",
		Description:    "Deskripsi",
		WhatsappNumber: "628111222333",
	})
	require.NoError(t, err)

	hero := svc.Content().Hero
	assert.Equal(t, "scriptJudul/script", hero.Title)
	assert.Equal(t, "Subjudul", hero.Subtitle)
}

func TestFeatureLifecycle(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newContentService(t, st)
	ctx := context.Background()

	created, err := svc.AddFeature(ctx, testUserID, models.Feature{
		Icon:        "Zap",
		Title:       "Fitur Baru",
		Description: "Deskripsi fitur",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Len(t, svc.Content().Features, 7)

	err = svc.UpdateFeature(ctx, testUserID, created.ID, models.Feature{
		Icon:        "Zap",
		Title:       "Fitur Direvisi",
		Description: "Deskripsi fitur",
	})
	require.NoError(t, err)

	var found *models.Feature
	for _, f := range svc.Content().Features {
		if f.ID == created.ID {
			f := f
			found = &f
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Fitur Direvisi", found.Title)

	require.NoError(t, svc.DeleteFeature(ctx, testUserID, created.ID))
	assert.Len(t, svc.Content().Features, 6)

	// The deletion reached the store
	data, err := st.Get(ctx, store.KeyContent)
	require.NoError(t, err)
	var persisted models.SiteContent
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Len(t, persisted.Features, 6)
}

func TestUpdateFeatureUnknownID(t *testing.T) {
	svc := newContentService(t, store.NewMemoryStore())

	err := svc.UpdateFeature(context.Background(), testUserID, "missing", models.Feature{
		Icon: "X", Title: "T", Description: "D",
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteFeatureUnknownID(t *testing.T) {
	svc := newContentService(t, store.NewMemoryStore())

	err := svc.DeleteFeature(context.Background(), testUserID, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPackageLifecycle(t *testing.T) {
	svc := newContentService(t, store.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.AddPackage(ctx, testUserID, models.Package{
		Name:        "Paket Korporat",
		Price:       "Rp 1.999.000",
		Description: "Untuk tim",
		Features:    []string{"Semua fitur VIP", "Seat untuk 5 orang"},
		Popular:     false,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Len(t, svc.Content().Packages, 4)

	err = svc.UpdatePackage(ctx, testUserID, created.ID, models.Package{
		Name:        "Paket Korporat",
		Price:       "Rp 2.499.000",
		Description: "Untuk tim",
		Features:    []string{"Semua fitur VIP", "Seat untuk 10 orang"},
		Popular:     true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePackage(ctx, testUserID, created.ID))
	assert.Len(t, svc.Content().Packages, 3)

	err = svc.UpdatePackage(ctx, testUserID, created.ID, *created)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestTestimonialLifecycle(t *testing.T) {
	svc := newContentService(t, store.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.AddTestimonial(ctx, testUserID, models.Testimonial{
		Name:    "Rina",
		Role:    "Desainer",
		Content: "Materinya jelas dan terstruktur.",
		Rating:  4,
	})
	require.NoError(t, err)
	assert.Len(t, svc.Content().Testimonials, 7)

	require.NoError(t, svc.DeleteTestimonial(ctx, testUserID, created.ID))
	assert.Len(t, svc.Content().Testimonials, 6)

	err = svc.DeleteTestimonial(ctx, testUserID, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestFAQLifecycle(t *testing.T) {
	svc := newContentService(t, store.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.AddFAQ(ctx, testUserID, models.FAQ{
		Question: "Apakah ada kelas offline?",
		Answer:   "Saat ini semua kelas diadakan online.",
	})
	require.NoError(t, err)
	assert.Len(t, svc.Content().FAQs, 9)

	err = svc.UpdateFAQ(ctx, testUserID, created.ID, models.FAQ{
		Question: "Apakah ada kelas offline?",
		Answer:   "Kelas offline tersedia di Jakarta setiap bulan.",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFAQ(ctx, testUserID, created.ID))
	assert.Len(t, svc.Content().FAQs, 8)
}

func TestContentStorageFailure(t *testing.T) {
	svc := newContentService(t, failingStore{})
	ctx := context.Background()

	// Reads degrade to defaults
	assert.Len(t, svc.Content().Features, 6)

	// Writes surface the failure
	_, err := svc.AddFeature(ctx, testUserID, models.Feature{
		Icon: "X", Title: "T", Description: "D",
	})
	assert.ErrorIs(t, err, models.ErrStorageFailure)
}

func TestContentMutationsNotServedOnFailedWrite(t *testing.T) {
	svc := newContentService(t, failingStore{})
	ctx := context.Background()

	before := svc.Content()
	featureID := before.Features[0].ID
	faqCount := len(before.FAQs)

	_, err := svc.AddFeature(ctx, testUserID, models.Feature{
		Icon: "X", Title: "Baru", Description: "D",
	})
	assert.ErrorIs(t, err, models.ErrStorageFailure)

	err = svc.UpdateHero(ctx, testUserID, models.HeroContent{
		Title: "Judul Gagal", Subtitle: "S", Description: "D", WhatsappNumber: "628123",
	})
	assert.ErrorIs(t, err, models.ErrStorageFailure)

	err = svc.DeleteFeature(ctx, testUserID, featureID)
	assert.ErrorIs(t, err, models.ErrStorageFailure)

	err = svc.UpdateFAQ(ctx, testUserID, before.FAQs[0].ID, models.FAQ{
		Question: "Q?", Answer: "A.",
	})
	assert.ErrorIs(t, err, models.ErrStorageFailure)

	// A rejected write never reaches the served blob
	after := svc.Content()
	assert.Equal(t, before.Hero, after.Hero)
	assert.Equal(t, before.Features, after.Features)
	assert.Len(t, after.FAQs, faqCount)
	assert.Equal(t, before.FAQs[0].Question, after.FAQs[0].Question)
}
