package domain

// ExtractedMetadata holds the header fields pulled from one invoice document.
// Pointer fields are nil when no pattern matched; nil means "unknown", never zero.
type ExtractedMetadata struct {
	SupplierCode  string   `json:"supplier_code"`
	InvoiceNumber *string  `json:"invoice_number"`
	Date          *string  `json:"date"` // canonical YYYY-MM-DD
	TotalAmount   *float64 `json:"total_amount"`
}

// LineItem is a single extracted invoice row. Numeric fields a pattern does
// not map stay zero; DiscountPercent in particular defaults to 0.
type LineItem struct {
	Code            string           `json:"code"`
	Description     string           `json:"description"`
	Quantity        float64          `json:"quantity"`
	Unit            float64          `json:"unit"`
	UnitPrice       float64          `json:"unit_price"`
	DiscountPercent float64          `json:"discount_percent"`
	NetUnitPrice    float64          `json:"net_unit_price"`
	TotalPrice      float64          `json:"total_price"`
	PatternName     string           `json:"pattern_name"`
	Validation      ValidationResult `json:"validation"`
}

// RuleViolation is one failed validation check on a line item.
type RuleViolation struct {
	RuleKey  string             `json:"rule_key"`
	Severity ValidationSeverity `json:"severity"`
	Message  string             `json:"message"`
}

// ValidationResult collects the violations for one line item.
// An empty violation set means the item passed every check.
type ValidationResult struct {
	Violations []RuleViolation `json:"violations"`
}

// Valid reports whether the item has no error-severity violations.
func (r ValidationResult) Valid() bool {
	for _, v := range r.Violations {
		if v.Severity == ValidationSeverityError {
			return false
		}
	}
	return true
}

// Flagged reports whether the item has any violation at all, including warnings.
func (r ValidationResult) Flagged() bool {
	return len(r.Violations) > 0
}
