package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aditsaputra/academy/internal/middleware"
	"github.com/aditsaputra/academy/internal/models"
	pkghttp "github.com/aditsaputra/academy/pkg/http"
)

// ContentServiceInterface defines the interface for content management
type ContentServiceInterface interface {
	Content() *models.SiteContent
	UpdateHero(ctx context.Context, userID string, hero models.HeroContent) error

	AddFeature(ctx context.Context, userID string, f models.Feature) (*models.Feature, error)
	UpdateFeature(ctx context.Context, userID, id string, f models.Feature) error
	DeleteFeature(ctx context.Context, userID, id string) error

	AddPackage(ctx context.Context, userID string, p models.Package) (*models.Package, error)
	UpdatePackage(ctx context.Context, userID, id string, p models.Package) error
	DeletePackage(ctx context.Context, userID, id string) error

	AddTestimonial(ctx context.Context, userID string, t models.Testimonial) (*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, userID, id string, t models.Testimonial) error
	DeleteTestimonial(ctx context.Context, userID, id string) error

	AddFAQ(ctx context.Context, userID string, f models.FAQ) (*models.FAQ, error)
	UpdateFAQ(ctx context.Context, userID, id string, f models.FAQ) error
	DeleteFAQ(ctx context.Context, userID, id string) error
}

// ContentHandler handles the admin content CRUD endpoints.
type ContentHandler struct {
	service ContentServiceInterface
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(service ContentServiceInterface) *ContentHandler {
	return &ContentHandler{service: service}
}

// GetContent returns the full content blob.
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	pkghttp.WriteJSON(w, http.StatusOK, h.service.Content())
}

// UpdateHero replaces the hero section.
func (h *ContentHandler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	var hero models.HeroContent
	if !decodeAndValidate(w, r, &hero) {
		return
	}
	if err := h.service.UpdateHero(r.Context(), currentUserID(r), hero); err != nil {
		writeContentError(w, err)
		return
	}
	pkghttp.WriteJSON(w, http.StatusOK, hero)
}

// CreateFeature adds a landing-page feature.
func (h *ContentHandler) CreateFeature(w http.ResponseWriter, r *http.Request) {
	var f models.Feature
	if !decodeAndValidate(w, r, &f) {
		return
	}
	created, err := h.service.AddFeature(r.Context(), currentUserID(r), f)
	if err != nil {
		writeContentError(w, err)
		return
	}
	pkghttp.WriteJSON(w, http.StatusCreated, created)
}

// UpdateFeature replaces a feature by id.
func (h *ContentHandler) UpdateFeature(w http.ResponseWriter, r *http.Request) {
	var f models.Feature
	if !decodeAndValidate(w, r, &f) {
		return
	}
	if err := h.service.UpdateFeature(r.Context(), currentUserID(r), chi.URLParam(r, "id"), f); err != nil {
		writeContentError(w, err)
		return
	}
	pkghttp.WriteJSON(w, http.StatusOK, f)
}

// DeleteFeature removes a feature by id.
func (h *ContentHandler) DeleteFeature(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteFeature(r.Context(), currentUserID(r), chi.URLParam(r, "id")); err != nil {
		writeContentError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreatePackage adds a course package.
func (h *ContentHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var p models.Package
	if !decodeAndValidate(w, r, &p) {
		return
	}
	created, err := h.service.AddPackage(r.Context(), currentUserID(r), p)
	if err != nil {
		writeContentError(w, err)
		return
	}
	pkghttp.WriteJSON(w, http.StatusCreated, created)
}

// UpdatePackage replaces a package by id.
func (h *ContentHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	var p models.Package
	if !decodeAndValidate(w, r, &p) {
		return
	}
	if err := h.service.UpdatePackage(r.Context(), currentUserID(r), chi.URLParam(r, "id"), p); err != nil {
		writeContentError(w, err)
		return
	}
	pkghttp.WriteJSON(w, http.StatusOK, p)
}

// DeletePackage removes a package by id.
func (h *ContentHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePackage(r.Context(), currentUserID(r), chi.URLParam(r, "id")); err != nil {
		writeContentError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateTestimonial adds a testimonial.
func (h *ContentHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var t models.Testimonial
	if !decodeAndValidate(w, r, &t) {
		return
	}
	created, err := h.service.AddTestimonial(r.Context(), currentUserID(r), t)
	if err != nil {
		writeContentError(w, err)
		return
	}
	pkghttp.WriteJSON(w, http.StatusCreated, created)
}

// UpdateTestimonial replaces a testimonial by id.
func (h *ContentHandler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var t models.Testimonial
	if !decodeAndValidate(w, r, &t) {
		return
	}
	if err := h.service.UpdateTestimonial(r.Context(), currentUserID(r), chi.URLParam(r, "id"), t); err != nil {
		writeContentError(w, err)
		return
	}
	pkghttp.WriteJSON(w, http.StatusOK, t)
}

// DeleteTestimonial removes a testimonial by id.
func (h *ContentHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTestimonial(r.Context(), currentUserID(r), chi.URLParam(r, "id")); err != nil {
		writeContentError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateFAQ adds an FAQ entry.
func (h *ContentHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var f models.FAQ
	if !decodeAndValidate(w, r, &f) {
		return
	}
	created, err := h.service.AddFAQ(r.Context(), currentUserID(r), f)
	if err != nil {
		writeContentError(w, err)
		return
	}
	pkghttp.WriteJSON(w, http.StatusCreated, created)
}

// UpdateFAQ replaces an FAQ entry by id.
func (h *ContentHandler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	var f models.FAQ
	if !decodeAndValidate(w, r, &f) {
		return
	}
	if err := h.service.UpdateFAQ(r.Context(), currentUserID(r), chi.URLParam(r, "id"), f); err != nil {
		writeContentError(w, err)
		return
	}
	pkghttp.WriteJSON(w, http.StatusOK, f)
}

// DeleteFAQ removes an FAQ entry by id.
func (h *ContentHandler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteFAQ(r.Context(), currentUserID(r), chi.URLParam(r, "id")); err != nil {
		writeContentError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return false
	}
	if err := ValidateRequest(dst); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return false
	}
	return true
}

func currentUserID(r *http.Request) string {
	if user := middleware.UserFromContext(r.Context()); user != nil {
		return user.ID
	}
	return ""
}

func writeContentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		pkghttp.WriteNotFound(w, "Item not found")
	case errors.Is(err, models.ErrStorageFailure):
		pkghttp.WriteInternalError(w, "Failed to save content")
	default:
		pkghttp.WriteInternalError(w, "Internal server error")
	}
}
