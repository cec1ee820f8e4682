// Package prompt composes the AI-assisted fallback extraction prompt. The
// builder returns text only; sending it to a model and mapping the JSON
// response back is the caller's concern.
package prompt

import (
	"fmt"
	"strings"

	"invoscan/internal/domain"
	"invoscan/internal/profile"
)

const jsonSchema = `Return ONLY a valid JSON array with no markdown formatting, no code fences, no explanation. Each element must have exactly these fields:
{
  "code": "",
  "description": "",
  "quantity": 0,
  "unitPrice": 0,
  "discountPercent": 0,
  "totalPrice": 0
}
Extract EVERY line item. Do not skip, summarize, or omit any rows. If a field is absent on a row, use empty string for text and 0 for numbers.`

// Build returns the extraction prompt for one document. With a resolved
// profile it includes the supplier's column legend and hints; without one
// it emits the shorter generic form with the same target schema. Known
// metadata values become anchor sentences the model can self-check against.
func Build(p *profile.Profile, meta domain.ExtractedMetadata) string {
	var sb strings.Builder

	if p != nil {
		fmt.Fprintf(&sb, "You are a document data extraction assistant. The text below is an invoice from %s. Extract all line items.\n\n", p.DisplayName)
		if len(p.ExpectedColumns) > 0 {
			sb.WriteString("Item rows carry these columns, in order: ")
			sb.WriteString(strings.Join(p.ExpectedColumns, " | "))
			sb.WriteString("\n")
		}
		if len(p.PromptHints) > 0 {
			sb.WriteString("Supplier-specific notes:\n")
			for _, hint := range p.PromptHints {
				sb.WriteString("- ")
				sb.WriteString(hint)
				sb.WriteString("\n")
			}
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("You are a document data extraction assistant. The text below is a supplier invoice of unknown layout. Extract all line items.\n\n")
	}

	sb.WriteString(jsonSchema)

	if meta.TotalAmount != nil {
		fmt.Fprintf(&sb, "\n\nThe invoice grand total is %.2f. The sum of your extracted totalPrice values should approximately equal this figure; re-check your output if it does not.", *meta.TotalAmount)
	}
	if meta.InvoiceNumber != nil {
		fmt.Fprintf(&sb, "\nThis document is invoice number %s.", *meta.InvoiceNumber)
	}

	return sb.String()
}
