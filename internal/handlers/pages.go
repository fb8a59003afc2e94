package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/aditsaputra/academy/internal/models"
	pkghttp "github.com/aditsaputra/academy/pkg/http"
)

//go:embed web/templates
var templateFS embed.FS

const whatsappMessage = "Halo, saya ingin daftar kursus trading crypto dan ingin tahu lebih lanjut tentang paket yang tersedia."

// PageHandler renders the public landing page and serves the public
// content API consumed by the admin frontend.
type PageHandler struct {
	content ContentServiceInterface
	logger  *slog.Logger
	landing *template.Template
}

// NewPageHandler parses the embedded templates and returns the handler.
func NewPageHandler(content ContentServiceInterface, logger *slog.Logger) (*PageHandler, error) {
	landing, err := template.New("landing.html").Funcs(template.FuncMap{
		"stars": func(rating int) []int { return make([]int, rating) },
	}).ParseFS(templateFS, "web/templates/landing.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse landing template: %w", err)
	}
	return &PageHandler{content: content, logger: logger, landing: landing}, nil
}

// landingPageData binds the content blob plus derived values.
type landingPageData struct {
	*models.SiteContent
	WhatsappLink string
}

// Landing renders the public landing page.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	content := h.content.Content()
	data := landingPageData{
		SiteContent:  content,
		WhatsappLink: whatsappLink(content.Hero.WhatsappNumber),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.landing.Execute(w, data); err != nil {
		h.logger.Error("failed to render landing page", slog.Any("error", err))
	}
}

// PublicContent serves the content blob for client-side rendering.
func (h *PageHandler) PublicContent(w http.ResponseWriter, r *http.Request) {
	pkghttp.WriteJSON(w, http.StatusOK, h.content.Content())
}

// whatsappLink builds the call-to-action link with the prefilled
// enrollment message.
func whatsappLink(number string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(whatsappMessage))
}
