package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoscan/internal/domain"
)

const profileYAML = `profiles:
  - code: vetsup
    display_name: VetSup Trading
    identifier: '(?i)vetsup\s+trading'
    metadata:
      invoice_number:
        - pattern: '(?i)inv\s+([A-Z0-9-]+)'
          group: 1
          where: top right
      date:
        - pattern: '(?i)date[:\s]+(\d{2}/\d{2}/\d{4})'
          group: 1
          format: DD/MM/YYYY
      total_amount:
        - pattern: '(?i)total[:\s]+R?(\d+\.\d{2})'
          group: 1
    line_items:
      - name: rows
        pattern: '(?m)^(V\d{4})\s+(.+?)\s+(\d+)\s+(\d+\.\d{2})\s+(\d+\.\d{2})$'
        groups:
          code: 1
          description: 2
          quantity: 3
          unit_price: 4
          total_price: 5
        constants:
          unit: 1
    validation:
      quantity_min: 1
      quantity_max: 100
      price_min: 0.5
      price_max: 10000
      tax_rate_percent: 15
      expected_discounts: [0, 5]
    prompt_hints:
      - Item codes are V followed by four digits.
    expected_columns: [Code, Description, Qty, Price, Total]
`

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	profiles, err := LoadFile(writeProfileFile(t, profileYAML))
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	p := profiles[0]
	assert.Equal(t, "vetsup", p.Code)
	assert.Equal(t, "VetSup Trading", p.DisplayName)
	assert.True(t, p.Identifier.MatchString("VetSup Trading account"))
	assert.Len(t, p.MetadataSpecs[domain.MetadataInvoiceNumber], 1)
	assert.Equal(t, DateFormatDMY4, p.MetadataSpecs[domain.MetadataDate][0].Format)

	require.Len(t, p.LineItemPatterns, 1)
	lp := p.LineItemPatterns[0]
	assert.Equal(t, "rows", lp.Name)
	assert.Equal(t, 2, lp.Fields[domain.FieldDescription].Group)
	require.NotNil(t, lp.Fields[domain.FieldUnit].Const)
	assert.Equal(t, 1.0, *lp.Fields[domain.FieldUnit].Const)

	assert.Equal(t, []float64{0, 5}, p.Validation.ExpectedDiscounts)
	assert.Equal(t, 15.0, p.Validation.TaxRatePercent)
}

func TestLoadFile_BadRegexFailsFast(t *testing.T) {
	bad := `profiles:
  - code: broken
    display_name: Broken
    identifier: '(unclosed'
`
	_, err := LoadFile(writeProfileFile(t, bad))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestNewDefaultRegistry(t *testing.T) {
	t.Run("builtins_only", func(t *testing.T) {
		reg, err := NewDefaultRegistry("")
		require.NoError(t, err)
		assert.Equal(t, len(Builtin()), reg.Len())
	})

	t.Run("file_profiles_appended_after_builtins", func(t *testing.T) {
		reg, err := NewDefaultRegistry(writeProfileFile(t, profileYAML))
		require.NoError(t, err)
		require.Equal(t, len(Builtin())+1, reg.Len())

		all := reg.All()
		assert.Equal(t, "vetsup", all[len(all)-1].Code)
	})
}
