package extract

import (
	"log"

	"invoscan/internal/domain"
	"invoscan/internal/profile"
)

// LineItems runs the profile's ordered pattern set over the document and
// returns every row any pattern matched. Patterns are not mutually
// exclusive across a document — an invoice can mix row shapes — so results
// accumulate: in-text order within each pattern, pattern groups
// concatenated in declaration order. nil profile yields no items; the
// caller falls back to AI-assisted extraction.
func LineItems(text string, p *profile.Profile) []domain.LineItem {
	if p == nil {
		return nil
	}

	var items []domain.LineItem
	for _, lp := range p.LineItemPatterns {
		for _, m := range lp.Pattern.FindAllStringSubmatch(text, -1) {
			items = append(items, mapItem(m, &lp))
		}
	}
	return items
}

// mapItem applies the pattern's field mapping to one regex match. The
// mapping was validated at registry load, so group indices are in range.
func mapItem(match []string, lp *profile.LineItemPattern) domain.LineItem {
	item := domain.LineItem{PatternName: lp.Name}
	for field, src := range lp.Fields {
		if src.Const != nil {
			setNumeric(&item, field, *src.Const)
			continue
		}
		raw := match[src.Group]
		switch field {
		case domain.FieldCode:
			item.Code = raw
		case domain.FieldDescription:
			item.Description = raw
		default:
			v, err := parseAmount(raw)
			if err != nil {
				log.Printf("extract.LineItems: pattern %q field %s: unparseable number %q", lp.Name, field, raw)
				continue
			}
			setNumeric(&item, field, v)
		}
	}
	return item
}

func setNumeric(item *domain.LineItem, field domain.ItemField, v float64) {
	switch field {
	case domain.FieldQuantity:
		item.Quantity = v
	case domain.FieldUnit:
		item.Unit = v
	case domain.FieldUnitPrice:
		item.UnitPrice = v
	case domain.FieldDiscountPercent:
		item.DiscountPercent = v
	case domain.FieldNetUnitPrice:
		item.NetUnitPrice = v
	case domain.FieldTotalPrice:
		item.TotalPrice = v
	}
}
