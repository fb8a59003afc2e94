package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/aditsaputra/academy/internal/models"
	"github.com/aditsaputra/academy/internal/store"
	pkglogger "github.com/aditsaputra/academy/pkg/logger"
	"github.com/aditsaputra/academy/pkg/sanitize"
)

// ContentService manages the landing-page content blob: the hero
// section plus the feature, package, testimonial and FAQ collections.
// Mutations are applied to a copy and committed only after the copy is
// persisted, so a failed write never changes the served content. When
// the persisted record is absent or unreadable the seeded defaults
// apply.
type ContentService struct {
	store  store.Store
	logger *slog.Logger
	audit  *pkglogger.AuditLogger

	mu      sync.Mutex
	content *models.SiteContent
}

// NewContentService creates a ContentService and loads the persisted
// content, falling back to defaults on a missing or corrupt record.
func NewContentService(ctx context.Context, st store.Store, logger *slog.Logger, audit *pkglogger.AuditLogger) *ContentService {
	s := &ContentService{store: st, logger: logger, audit: audit}

	data, err := st.Get(ctx, store.KeyContent)
	if err != nil {
		logger.Error("failed to read content record, using defaults", slog.Any("error", err))
	}
	if data != nil {
		var content models.SiteContent
		if err := json.Unmarshal(data, &content); err != nil {
			logger.Warn("content record unreadable, using defaults", slog.Any("error", err))
		} else {
			s.content = &content
		}
	}
	if s.content == nil {
		s.content = models.DefaultContent()
	}
	return s
}

// Content returns a deep copy of the current site content.
func (s *ContentService) Content() *models.SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// UpdateHero replaces the hero section.
func (s *ContentService) UpdateHero(ctx context.Context, userID string, hero models.HeroContent) error {
	hero.Title = sanitize.Clean(hero.Title)
	hero.Subtitle = sanitize.Clean(hero.Subtitle)
	hero.Description = sanitize.Clean(hero.Description)
	hero.WhatsappNumber = sanitize.Clean(hero.WhatsappNumber)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	next.Hero = hero
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.audit.LogContentChange(userID, "hero", "update")
	return nil
}

// AddFeature appends a feature and assigns it a fresh id.
func (s *ContentService) AddFeature(ctx context.Context, userID string, f models.Feature) (*models.Feature, error) {
	f.ID = uuid.NewString()
	cleanFeature(&f)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	next.Features = append(next.Features, f)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.audit.LogContentChange(userID, "features", "add")
	return &f, nil
}

// UpdateFeature replaces the feature with the given id.
func (s *ContentService) UpdateFeature(ctx context.Context, userID, id string, f models.Feature) error {
	f.ID = id
	cleanFeature(&f)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	for i := range next.Features {
		if next.Features[i].ID == id {
			next.Features[i] = f
			if err := s.commit(ctx, next); err != nil {
				return err
			}
			s.audit.LogContentChange(userID, "features", "update")
			return nil
		}
	}
	return models.ErrNotFound
}

// DeleteFeature removes the feature with the given id.
func (s *ContentService) DeleteFeature(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	for i := range next.Features {
		if next.Features[i].ID == id {
			next.Features = append(next.Features[:i], next.Features[i+1:]...)
			if err := s.commit(ctx, next); err != nil {
				return err
			}
			s.audit.LogContentChange(userID, "features", "delete")
			return nil
		}
	}
	return models.ErrNotFound
}

// AddPackage appends a course package and assigns it a fresh id.
func (s *ContentService) AddPackage(ctx context.Context, userID string, p models.Package) (*models.Package, error) {
	p.ID = uuid.NewString()
	cleanPackage(&p)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	next.Packages = append(next.Packages, p)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.audit.LogContentChange(userID, "packages", "add")
	return &p, nil
}

// UpdatePackage replaces the package with the given id.
func (s *ContentService) UpdatePackage(ctx context.Context, userID, id string, p models.Package) error {
	p.ID = id
	cleanPackage(&p)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	for i := range next.Packages {
		if next.Packages[i].ID == id {
			next.Packages[i] = p
			if err := s.commit(ctx, next); err != nil {
				return err
			}
			s.audit.LogContentChange(userID, "packages", "update")
			return nil
		}
	}
	return models.ErrNotFound
}

// DeletePackage removes the package with the given id.
func (s *ContentService) DeletePackage(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	for i := range next.Packages {
		if next.Packages[i].ID == id {
			next.Packages = append(next.Packages[:i], next.Packages[i+1:]...)
			if err := s.commit(ctx, next); err != nil {
				return err
			}
			s.audit.LogContentChange(userID, "packages", "delete")
			return nil
		}
	}
	return models.ErrNotFound
}

// AddTestimonial appends a testimonial and assigns it a fresh id.
func (s *ContentService) AddTestimonial(ctx context.Context, userID string, t models.Testimonial) (*models.Testimonial, error) {
	t.ID = uuid.NewString()
	cleanTestimonial(&t)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	next.Testimonials = append(next.Testimonials, t)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.audit.LogContentChange(userID, "testimonials", "add")
	return &t, nil
}

// UpdateTestimonial replaces the testimonial with the given id.
func (s *ContentService) UpdateTestimonial(ctx context.Context, userID, id string, t models.Testimonial) error {
	t.ID = id
	cleanTestimonial(&t)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	for i := range next.Testimonials {
		if next.Testimonials[i].ID == id {
			next.Testimonials[i] = t
			if err := s.commit(ctx, next); err != nil {
				return err
			}
			s.audit.LogContentChange(userID, "testimonials", "update")
			return nil
		}
	}
	return models.ErrNotFound
}

// DeleteTestimonial removes the testimonial with the given id.
func (s *ContentService) DeleteTestimonial(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	for i := range next.Testimonials {
		if next.Testimonials[i].ID == id {
			next.Testimonials = append(next.Testimonials[:i], next.Testimonials[i+1:]...)
			if err := s.commit(ctx, next); err != nil {
				return err
			}
			s.audit.LogContentChange(userID, "testimonials", "delete")
			return nil
		}
	}
	return models.ErrNotFound
}

// AddFAQ appends an FAQ entry and assigns it a fresh id.
func (s *ContentService) AddFAQ(ctx context.Context, userID string, f models.FAQ) (*models.FAQ, error) {
	f.ID = uuid.NewString()
	cleanFAQ(&f)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	next.FAQs = append(next.FAQs, f)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.audit.LogContentChange(userID, "faqs", "add")
	return &f, nil
}

// UpdateFAQ replaces the FAQ entry with the given id.
func (s *ContentService) UpdateFAQ(ctx context.Context, userID, id string, f models.FAQ) error {
	f.ID = id
	cleanFAQ(&f)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	for i := range next.FAQs {
		if next.FAQs[i].ID == id {
			next.FAQs[i] = f
			if err := s.commit(ctx, next); err != nil {
				return err
			}
			s.audit.LogContentChange(userID, "faqs", "update")
			return nil
		}
	}
	return models.ErrNotFound
}

// DeleteFAQ removes the FAQ entry with the given id.
func (s *ContentService) DeleteFAQ(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	for i := range next.FAQs {
		if next.FAQs[i].ID == id {
			next.FAQs = append(next.FAQs[:i], next.FAQs[i+1:]...)
			if err := s.commit(ctx, next); err != nil {
				return err
			}
			s.audit.LogContentChange(userID, "faqs", "delete")
			return nil
		}
	}
	return models.ErrNotFound
}

// commit persists next and adopts it as the served content only once
// the write succeeds, so readers never see state the store rejected.
// Must be called with the mutex held.
func (s *ContentService) commit(ctx context.Context, next *models.SiteContent) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}
	if err := s.store.Set(ctx, store.KeyContent, data); err != nil {
		s.logger.Error("failed to persist content", slog.Any("error", err))
		return fmt.Errorf("%w: %v", models.ErrStorageFailure, err)
	}
	s.content = next
	return nil
}

// snapshot deep-copies the content. Must be called with the mutex held.
func (s *ContentService) snapshot() *models.SiteContent {
	out := &models.SiteContent{
		Hero:         s.content.Hero,
		Features:     make([]models.Feature, len(s.content.Features)),
		Packages:     make([]models.Package, len(s.content.Packages)),
		Testimonials: make([]models.Testimonial, len(s.content.Testimonials)),
		FAQs:         make([]models.FAQ, len(s.content.FAQs)),
	}
	copy(out.Features, s.content.Features)
	copy(out.Testimonials, s.content.Testimonials)
	copy(out.FAQs, s.content.FAQs)
	for i, p := range s.content.Packages {
		features := make([]string, len(p.Features))
		copy(features, p.Features)
		p.Features = features
		out.Packages[i] = p
	}
	return out
}

func cleanFeature(f *models.Feature) {
	f.Icon = sanitize.Clean(f.Icon)
	f.Title = sanitize.Clean(f.Title)
	f.Description = sanitize.Clean(f.Description)
}

func cleanPackage(p *models.Package) {
	p.Name = sanitize.Clean(p.Name)
	p.Price = sanitize.Clean(p.Price)
	p.Description = sanitize.Clean(p.Description)
	for i, feat := range p.Features {
		p.Features[i] = sanitize.Clean(feat)
	}
}

func cleanTestimonial(t *models.Testimonial) {
	t.Name = sanitize.Clean(t.Name)
	t.Role = sanitize.Clean(t.Role)
	t.Content = sanitize.Clean(t.Content)
}

func cleanFAQ(f *models.FAQ) {
	f.Question = sanitize.Clean(f.Question)
	f.Answer = sanitize.Clean(f.Answer)
}
