package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoscan/internal/profile"
)

func podoCare(t *testing.T) *profile.Profile {
	t.Helper()
	reg, err := profile.NewRegistry(profile.Builtin()...)
	require.NoError(t, err)
	p, err := reg.Get("podocare")
	require.NoError(t, err)
	return p
}

func TestLineItems_NilProfile(t *testing.T) {
	assert.Nil(t, LineItems("P-PB Podo Box Size L 10.00 Each 76.35 0 R114.5 R763.50", nil))
}

func TestLineItems_EachRowMapping(t *testing.T) {
	items := LineItems("P-PB Podo Box Size L 10.00 Each 76.35 0 R114.5 R763.50", podoCare(t))
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "P-PB", item.Code)
	assert.Equal(t, "Podo Box Size L", item.Description)
	assert.Equal(t, 10.00, item.Quantity)
	assert.Equal(t, 1.0, item.Unit) // constant; "Each" has no capture group
	assert.Equal(t, 76.35, item.UnitPrice)
	assert.Equal(t, 0.0, item.DiscountPercent)
	assert.Equal(t, 114.5, item.NetUnitPrice)
	assert.Equal(t, 763.50, item.TotalPrice)
	assert.Equal(t, "each", item.PatternName)
}

func TestLineItems_PackRowCapturesUnit(t *testing.T) {
	items := LineItems("D-CR Cracked Heel Cream 36.00 12 95.00 5 R90.25 R3249.00", podoCare(t))
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "D-CR", item.Code)
	assert.Equal(t, 36.00, item.Quantity)
	assert.Equal(t, 12.0, item.Unit)
	assert.Equal(t, 95.00, item.UnitPrice)
	assert.Equal(t, 5.0, item.DiscountPercent)
	assert.Equal(t, "pack", item.PatternName)
}

func TestLineItems_MixedShapesAccumulate(t *testing.T) {
	// A pack row appears before an "Each" row in the text; results still
	// concatenate pattern groups in declaration order: each rows first.
	text := "D-CR Cracked Heel Cream 36.00 12 95.00 5 R90.25 R3249.00\n" +
		"P-PB Podo Box Size L 10.00 Each 76.35 0 R114.5 R763.50\n" +
		"P-FL Foot File Coarse 5.00 Each 42.00 10 R48.3 R189.00\n"
	items := LineItems(text, podoCare(t))
	require.Len(t, items, 3)

	assert.Equal(t, "P-PB", items[0].Code)
	assert.Equal(t, "P-FL", items[1].Code)
	assert.Equal(t, "D-CR", items[2].Code)
	assert.Equal(t, "each", items[0].PatternName)
	assert.Equal(t, "each", items[1].PatternName)
	assert.Equal(t, "pack", items[2].PatternName)
}

func TestLineItems_NonMatchingLinesIgnored(t *testing.T) {
	text := "Code Description Qty Unit Unit Price Disc % Nett Price Total\n" +
		"Thank you for your order\n"
	assert.Empty(t, LineItems(text, podoCare(t)))
}
