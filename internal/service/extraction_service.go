package service

import (
	"log"
	"math"

	"github.com/google/uuid"

	"invoscan/internal/domain"
	"invoscan/internal/extract"
	"invoscan/internal/profile"
	"invoscan/internal/prompt"
	"invoscan/internal/validator"
)

// ExtractionResult is the full outcome for one document.
type ExtractionResult struct {
	ID           uuid.UUID                `json:"id"`
	Metadata     domain.ExtractedMetadata `json:"metadata"`
	Items        []domain.LineItem        `json:"line_items"`
	NeedsAssist  bool                     `json:"needs_assist"`
	AssistPrompt string                   `json:"assist_prompt,omitempty"`
}

// ExtractionService runs the deterministic pipeline over raw invoice text:
// detect supplier, extract metadata and line items, validate, and decide
// whether the AI-assisted path is needed. Stateless apart from the immutable
// registry, so concurrent Extract calls are safe.
type ExtractionService struct {
	registry          *profile.Registry
	coverageTolerance float64
}

// NewExtractionService creates an ExtractionService. coverageTolerance is
// the relative gap between the sum of line totals and the extracted invoice
// total above which the result is flagged for AI-assisted extraction.
func NewExtractionService(registry *profile.Registry, coverageTolerance float64) *ExtractionService {
	return &ExtractionService{registry: registry, coverageTolerance: coverageTolerance}
}

// Extract processes one document. Partial extraction always wins over
// failure: a document matching no profile still yields a nil-field metadata
// shell, an empty item list, and the generic fallback prompt.
func (s *ExtractionService) Extract(text string) ExtractionResult {
	var p *profile.Profile
	if code := s.registry.Detect(text); code != "" {
		resolved, err := s.registry.Get(code)
		if err != nil {
			// Detect only returns registered codes; reaching this is a defect.
			log.Printf("service.ExtractionService: %v", err)
		} else {
			p = resolved
		}
	}

	meta := extract.Metadata(text, p)
	items := extract.LineItems(text, p)
	if p != nil {
		validator.Apply(items, p.Validation)
	}

	result := ExtractionResult{
		ID:       uuid.New(),
		Metadata: meta,
		Items:    items,
	}
	if s.needsAssist(p, meta, items) {
		result.NeedsAssist = true
		result.AssistPrompt = prompt.Build(p, meta)
	}
	return result
}

// Profiles returns the registry catalog in detection order.
func (s *ExtractionService) Profiles() []*profile.Profile {
	return s.registry.All()
}

// needsAssist decides whether deterministic extraction covered the document:
// no profile, no matched rows, or line totals summing too far from the
// extracted invoice total all route the caller to the AI-assisted path.
func (s *ExtractionService) needsAssist(p *profile.Profile, meta domain.ExtractedMetadata, items []domain.LineItem) bool {
	if p == nil || len(items) == 0 {
		return true
	}
	if meta.TotalAmount == nil || *meta.TotalAmount == 0 {
		return false // nothing to reconcile against
	}
	var sum float64
	for _, item := range items {
		sum += item.TotalPrice
	}
	gap := math.Abs(sum-*meta.TotalAmount) / *meta.TotalAmount
	if gap > s.coverageTolerance {
		log.Printf("service.ExtractionService: line totals %.2f vs invoice total %.2f (gap %.1f%%), flagging for assist",
			sum, *meta.TotalAmount, gap*100)
		return true
	}
	return false
}
