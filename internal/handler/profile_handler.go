package handler

import (
	"github.com/gin-gonic/gin"

	"invoscan/internal/service"
)

// ProfileSummary is the API view of one supplier profile. Regexes stay
// internal; the surface exposes what a reviewer needs to recognize formats.
type ProfileSummary struct {
	Code            string   `json:"code"`
	DisplayName     string   `json:"display_name"`
	PatternCount    int      `json:"pattern_count"`
	ExpectedColumns []string `json:"expected_columns,omitempty"`
}

// ProfileHandler serves the profile catalog.
type ProfileHandler struct {
	svc *service.ExtractionService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc *service.ExtractionService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// List handles GET /api/v1/profiles — the catalog in detection order.
func (h *ProfileHandler) List(c *gin.Context) {
	profiles := h.svc.Profiles()
	out := make([]ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ProfileSummary{
			Code:            p.Code,
			DisplayName:     p.DisplayName,
			PatternCount:    len(p.LineItemPatterns),
			ExpectedColumns: p.ExpectedColumns,
		})
	}
	RespondOK(c, out)
}
