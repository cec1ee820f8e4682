// Package export renders extraction results as an XLSX review workbook.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"invoscan/internal/domain"
)

const (
	itemSheet = "Line Items"
	metaSheet = "Metadata"
)

// itemColumns defines the Line Items header row.
var itemColumns = []string{
	"Code",
	"Description",
	"Quantity",
	"Unit",
	"Unit Price",
	"Discount %",
	"Nett Price",
	"Total",
	"Pattern",
	"Flags",
}

// Workbook builds the review workbook: one row per extracted line item with
// its validation flags, plus a metadata summary sheet. Nil metadata fields
// render as empty cells, never as zeros.
func Workbook(meta domain.ExtractedMetadata, items []domain.LineItem) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), itemSheet); err != nil {
		return nil, fmt.Errorf("naming item sheet: %w", err)
	}
	for col, name := range itemColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(itemSheet, cell, name); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}
	for i := range items {
		if err := writeItemRow(f, i+2, &items[i]); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(metaSheet); err != nil {
		return nil, fmt.Errorf("creating metadata sheet: %w", err)
	}
	if err := writeMetadata(f, meta); err != nil {
		return nil, err
	}

	return f, nil
}

func writeItemRow(f *excelize.File, row int, item *domain.LineItem) error {
	values := []interface{}{
		item.Code,
		item.Description,
		item.Quantity,
		item.Unit,
		item.UnitPrice,
		item.DiscountPercent,
		item.NetUnitPrice,
		item.TotalPrice,
		item.PatternName,
		flagSummary(item.Validation),
	}
	for col, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := f.SetCellValue(itemSheet, cell, v); err != nil {
			return fmt.Errorf("writing item row %d: %w", row, err)
		}
	}
	return nil
}

func writeMetadata(f *excelize.File, meta domain.ExtractedMetadata) error {
	supplier := meta.SupplierCode
	if supplier == "" {
		supplier = "(not detected)"
	}
	rows := [][2]interface{}{
		{"Supplier", supplier},
		{"Invoice Number", stringOrEmpty(meta.InvoiceNumber)},
		{"Invoice Date", stringOrEmpty(meta.Date)},
		{"Invoice Total", floatOrEmpty(meta.TotalAmount)},
		{"Exported At", time.Now().Format(time.RFC3339)},
	}
	for i, pair := range rows {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(metaSheet, keyCell, pair[0]); err != nil {
			return fmt.Errorf("writing metadata: %w", err)
		}
		if err := f.SetCellValue(metaSheet, valCell, pair[1]); err != nil {
			return fmt.Errorf("writing metadata: %w", err)
		}
	}
	return nil
}

// flagSummary joins an item's violated rule keys for the Flags column.
func flagSummary(v domain.ValidationResult) string {
	if len(v.Violations) == 0 {
		return ""
	}
	keys := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		keys = append(keys, violation.RuleKey)
	}
	return strings.Join(keys, ", ")
}

func stringOrEmpty(s *string) interface{} {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition. Replaces
// non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized attachment filename,
// {sanitized_name}_{YYYY-MM-DD}.xlsx.
func BuildFilename(name string) string {
	if name == "" {
		name = "invoice"
	}
	return fmt.Sprintf("%s_%s.xlsx", SanitizeFilename(name), time.Now().Format("2006-01-02"))
}
