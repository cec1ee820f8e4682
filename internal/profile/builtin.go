package profile

import (
	"regexp"

	"invoscan/internal/domain"
)

// Builtin returns the hand-authored supplier catalog in detection order.
// Order is load-bearing: detection is first-match-wins, so more specific
// identifiers sit ahead of looser ones.
func Builtin() []*Profile {
	return []*Profile{
		podoCare(),
		transMed(),
		mediRite(),
	}
}

// podoCare covers PodoCare's two row shapes: per-unit "Each" rows and
// pack rows carrying an explicit pack size. Both can appear on one invoice.
func podoCare() *Profile {
	return &Profile{
		Code:        "podocare",
		DisplayName: "PodoCare Medical (Pty) Ltd",
		Identifier:  regexp.MustCompile(`(?i)podocare\s+medical`),
		MetadataSpecs: map[domain.MetadataField][]MetadataFieldRule{
			domain.MetadataInvoiceNumber: {
				{Pattern: regexp.MustCompile(`(?i)invoice\s+no[.:\s]*([A-Z0-9-]+)`), Group: 1, Where: "header block, top right"},
				{Pattern: regexp.MustCompile(`(?i)invoice\s*#\s*([A-Z0-9-]+)`), Group: 1, Where: "header block"},
			},
			domain.MetadataDate: {
				{Pattern: regexp.MustCompile(`(?i)date[.:\s]*(\d{2}/\d{2}/\d{2})\b`), Group: 1, Where: "below invoice number", Format: DateFormatDMY2},
				{Pattern: regexp.MustCompile(`(?i)date[.:\s]*(\d{2}/\d{2}/\d{4})`), Group: 1, Where: "below invoice number", Format: DateFormatDMY4},
			},
			domain.MetadataTotalAmount: {
				{Pattern: regexp.MustCompile(`(?i)total(?:\s+due)?[.:\s]*R\s*(\d+(?:\.\d+)?)`), Group: 1, Where: "footer"},
				{Pattern: regexp.MustCompile(`(?i)amount\s+due[.:\s]*R?\s*(\d+(?:\.\d+)?)`), Group: 1, Where: "footer"},
			},
		},
		LineItemPatterns: []LineItemPattern{
			{
				Name:    "each",
				Pattern: regexp.MustCompile(`(?m)^([A-Z][A-Z0-9-]{1,11})\s+(.+?)\s+(\d+(?:\.\d+)?)\s+Each\s+(\d+(?:\.\d+)?)\s+(\d+(?:\.\d+)?)\s+R(\d+(?:\.\d+)?)\s+R(\d+(?:\.\d+)?)\s*$`),
				Fields: map[domain.ItemField]FieldSource{
					domain.FieldCode:            Grp(1),
					domain.FieldDescription:     Grp(2),
					domain.FieldQuantity:        Grp(3),
					domain.FieldUnit:            Fixed(1), // "Each" implies a single unit, no capture
					domain.FieldUnitPrice:       Grp(4),
					domain.FieldDiscountPercent: Grp(5),
					domain.FieldNetUnitPrice:    Grp(6),
					domain.FieldTotalPrice:      Grp(7),
				},
			},
			{
				Name:    "pack",
				Pattern: regexp.MustCompile(`(?m)^([A-Z][A-Z0-9-]{1,11})\s+(.+?)\s+(\d+(?:\.\d+)?)\s+(\d+)\s+(\d+(?:\.\d+)?)\s+(\d+(?:\.\d+)?)\s+R(\d+(?:\.\d+)?)\s+R(\d+(?:\.\d+)?)\s*$`),
				Fields: map[domain.ItemField]FieldSource{
					domain.FieldCode:            Grp(1),
					domain.FieldDescription:     Grp(2),
					domain.FieldQuantity:        Grp(3),
					domain.FieldUnit:            Grp(4),
					domain.FieldUnitPrice:       Grp(5),
					domain.FieldDiscountPercent: Grp(6),
					domain.FieldNetUnitPrice:    Grp(7),
					domain.FieldTotalPrice:      Grp(8),
				},
			},
		},
		Validation: ValidationRules{
			QuantityMin:       0.01,
			QuantityMax:       1000,
			PriceMin:          0.01,
			PriceMax:          50000,
			TaxRatePercent:    15,
			ExpectedDiscounts: []float64{0, 5, 10},
		},
		PromptHints: []string{
			"Item codes start with a capitalised letter prefix such as P- or D-.",
			"Rows ending in the word Each are sold per single unit.",
			"Pack rows carry the pack size between the quantity and the unit price.",
			"Rand amounts in the last two columns are prefixed with R.",
		},
		ExpectedColumns: []string{"Code", "Description", "Qty", "Unit", "Unit Price", "Disc %", "Nett Price", "Total"},
	}
}

func transMed() *Profile {
	return &Profile{
		Code:        "transmed",
		DisplayName: "TransMed Surgical Supplies",
		Identifier:  regexp.MustCompile(`(?i)transmed\s+surgical`),
		MetadataSpecs: map[domain.MetadataField][]MetadataFieldRule{
			domain.MetadataInvoiceNumber: {
				{Pattern: regexp.MustCompile(`(?i)tax\s+invoice[#.:\s]*([A-Z]{2,3}-\d+)`), Group: 1, Where: "document title line"},
				{Pattern: regexp.MustCompile(`(?i)doc(?:ument)?\s+no[.:\s]*([A-Z0-9/-]+)`), Group: 1, Where: "header block"},
			},
			domain.MetadataDate: {
				{Pattern: regexp.MustCompile(`(?i)invoice\s+date[.:\s]*(\d{2}/\d{2}/\d{4})`), Group: 1, Where: "header block", Format: DateFormatDMY4},
			},
			domain.MetadataTotalAmount: {
				{Pattern: regexp.MustCompile(`(?i)total\s+incl\s+vat[.:\s]*R?\s*(\d+\.\d{2})`), Group: 1, Where: "totals box"},
				{Pattern: regexp.MustCompile(`(?i)total[.:\s]*R?\s*(\d+\.\d{2})`), Group: 1, Where: "totals box"},
			},
		},
		LineItemPatterns: []LineItemPattern{
			{
				// "TM4402 Scalpel blades No.15 3 x 45.00 135.00"
				Name:    "multiplier",
				Pattern: regexp.MustCompile(`(?m)^([A-Z]{2}\d{3,6})\s+(.+?)\s+(\d+(?:\.\d+)?)\s*x\s*(\d+\.\d{2})\s+(\d+\.\d{2})\s*$`),
				Fields: map[domain.ItemField]FieldSource{
					domain.FieldCode:        Grp(1),
					domain.FieldDescription: Grp(2),
					domain.FieldQuantity:    Grp(3),
					domain.FieldUnit:        Fixed(1),
					domain.FieldUnitPrice:   Grp(4),
					domain.FieldTotalPrice:  Grp(5),
				},
			},
		},
		Validation: ValidationRules{
			QuantityMin:    1,
			QuantityMax:    500,
			PriceMin:       0.5,
			PriceMax:       20000,
			TaxRatePercent: 15,
		},
		PromptHints: []string{
			"Item codes are two capital letters followed by digits, e.g. TM4402.",
			"Each row states quantity times unit price, e.g. 3 x 45.00.",
			"No discount column exists; treat every discount as 0.",
		},
		ExpectedColumns: []string{"Code", "Description", "Qty x Price", "Total"},
	}
}

func mediRite() *Profile {
	return &Profile{
		Code:        "medirite",
		DisplayName: "MediRite Wholesalers",
		Identifier:  regexp.MustCompile(`(?i)medirite`),
		MetadataSpecs: map[domain.MetadataField][]MetadataFieldRule{
			domain.MetadataInvoiceNumber: {
				{Pattern: regexp.MustCompile(`(?i)inv(?:oice)?\s*(?:no|nr)[.:\s]*(\d{6,})`), Group: 1, Where: "top left"},
			},
			domain.MetadataDate: {
				{Pattern: regexp.MustCompile(`(?i)dated?[.:\s]*(\d{2}/\d{2}/\d{2})\b`), Group: 1, Where: "top left", Format: DateFormatDMY2},
			},
			domain.MetadataTotalAmount: {
				{Pattern: regexp.MustCompile(`(?i)invoice\s+total[.:\s]*R?\s*(\d+(?:\.\d+)?)`), Group: 1, Where: "last page footer"},
				{Pattern: regexp.MustCompile(`(?i)total\s+payable[.:\s]*R?\s*(\d+(?:\.\d+)?)`), Group: 1, Where: "last page footer"},
			},
		},
		LineItemPatterns: []LineItemPattern{
			{
				// "88213 | Cotton wool 500g | 12 | 18.95 | 5.0 | 216.03"
				Name:    "piped",
				Pattern: regexp.MustCompile(`(?m)^(\d{4,6})\s*\|\s*(.+?)\s*\|\s*(\d+(?:\.\d+)?)\s*\|\s*(\d+(?:\.\d+)?)\s*\|\s*(\d+(?:\.\d+)?)\s*\|\s*(\d+(?:\.\d+)?)\s*$`),
				Fields: map[domain.ItemField]FieldSource{
					domain.FieldCode:            Grp(1),
					domain.FieldDescription:     Grp(2),
					domain.FieldQuantity:        Grp(3),
					domain.FieldUnitPrice:       Grp(4),
					domain.FieldDiscountPercent: Grp(5),
					domain.FieldTotalPrice:      Grp(6),
					domain.FieldUnit:            Fixed(1),
				},
			},
		},
		Validation: ValidationRules{
			QuantityMin:       1,
			QuantityMax:       2000,
			PriceMin:          0.05,
			PriceMax:          100000,
			TaxRatePercent:    15,
			ExpectedDiscounts: []float64{0, 2.5, 5},
		},
		PromptHints: []string{
			"Rows are pipe-delimited: code | description | qty | unit price | disc % | line total.",
			"Item codes are plain 4-6 digit numbers.",
		},
		ExpectedColumns: []string{"Code", "Description", "Qty", "Unit Price", "Disc %", "Line Total"},
	}
}
