package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoscan/internal/domain"
)

func sampleItems() []domain.LineItem {
	return []domain.LineItem{
		{
			Code: "P-PB", Description: "Podo Box Size L",
			Quantity: 10, Unit: 1, UnitPrice: 76.35,
			NetUnitPrice: 114.5, TotalPrice: 763.50, PatternName: "each",
		},
		{
			Code: "D-CR", Description: "Cracked Heel Cream",
			Quantity: 36, Unit: 12, UnitPrice: 95, DiscountPercent: 5,
			NetUnitPrice: 90.25, TotalPrice: 3249, PatternName: "pack",
			Validation: domain.ValidationResult{Violations: []domain.RuleViolation{
				{RuleKey: "discount_expected", Severity: domain.ValidationSeverityWarning, Message: "x"},
			}},
		},
	}
}

func TestWorkbook(t *testing.T) {
	num := "PC-10482"
	date := "2025-02-17"
	total := 4201.50
	meta := domain.ExtractedMetadata{
		SupplierCode:  "podocare",
		InvoiceNumber: &num,
		Date:          &date,
		TotalAmount:   &total,
	}

	f, err := Workbook(meta, sampleItems())
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	t.Run("header_row", func(t *testing.T) {
		got, err := f.GetCellValue(itemSheet, "A1")
		require.NoError(t, err)
		assert.Equal(t, "Code", got)
		got, err = f.GetCellValue(itemSheet, "J1")
		require.NoError(t, err)
		assert.Equal(t, "Flags", got)
	})

	t.Run("item_rows", func(t *testing.T) {
		code, err := f.GetCellValue(itemSheet, "A2")
		require.NoError(t, err)
		assert.Equal(t, "P-PB", code)

		flags, err := f.GetCellValue(itemSheet, "J2")
		require.NoError(t, err)
		assert.Empty(t, flags)

		flags, err = f.GetCellValue(itemSheet, "J3")
		require.NoError(t, err)
		assert.Equal(t, "discount_expected", flags)
	})

	t.Run("metadata_sheet", func(t *testing.T) {
		supplier, err := f.GetCellValue(metaSheet, "B1")
		require.NoError(t, err)
		assert.Equal(t, "podocare", supplier)

		invNum, err := f.GetCellValue(metaSheet, "B2")
		require.NoError(t, err)
		assert.Equal(t, "PC-10482", invNum)
	})
}

func TestWorkbook_NilMetadataFieldsStayEmpty(t *testing.T) {
	f, err := Workbook(domain.ExtractedMetadata{}, nil)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	supplier, err := f.GetCellValue(metaSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "(not detected)", supplier)

	invNum, err := f.GetCellValue(metaSheet, "B2")
	require.NoError(t, err)
	assert.Empty(t, invNum)

	total, err := f.GetCellValue(metaSheet, "B4")
	require.NoError(t, err)
	assert.Empty(t, total)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "PC-10482", SanitizeFilename("PC-10482"))
	assert.Equal(t, "inv_2025_02", SanitizeFilename("inv/2025:02"))
	assert.Equal(t, "a_b", SanitizeFilename("__a___b__"))
}

func TestBuildFilename(t *testing.T) {
	assert.Regexp(t, `^PC-10482_\d{4}-\d{2}-\d{2}\.xlsx$`, BuildFilename("PC-10482"))
	assert.Regexp(t, `^invoice_\d{4}-\d{2}-\d{2}\.xlsx$`, BuildFilename(""))
}
