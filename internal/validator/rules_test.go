package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoscan/internal/domain"
	"invoscan/internal/profile"
)

func bounds() profile.ValidationRules {
	return profile.ValidationRules{
		QuantityMin:       0.01,
		QuantityMax:       1000,
		PriceMin:          0.01,
		PriceMax:          50000,
		TaxRatePercent:    15,
		ExpectedDiscounts: []float64{0, 5, 10},
	}
}

func validItem() domain.LineItem {
	return domain.LineItem{
		Code: "P-PB", Description: "Podo Box Size L",
		Quantity: 10, Unit: 1, UnitPrice: 76.35,
		DiscountPercent: 0, NetUnitPrice: 114.5, TotalPrice: 763.50,
	}
}

func findRule(t *testing.T, key string) Rule {
	t.Helper()
	for _, r := range Rules() {
		if r.RuleKey() == key {
			return r
		}
	}
	t.Fatalf("no rule registered for key %q", key)
	return nil
}

func TestRules_Metadata(t *testing.T) {
	for _, r := range Rules() {
		assert.NotEmpty(t, r.RuleKey())
		assert.NotEmpty(t, r.RuleName())
		assert.NotEmpty(t, r.Severity())
	}
}

func TestQuantityRange(t *testing.T) {
	r := findRule(t, "quantity_range")

	t.Run("pass", func(t *testing.T) {
		item := validItem()
		assert.Empty(t, r.Check(&item, bounds()))
	})

	t.Run("fail_above_max", func(t *testing.T) {
		item := validItem()
		item.Quantity = 5000
		violations := r.Check(&item, bounds())
		require.Len(t, violations, 1)
		assert.Equal(t, domain.ValidationSeverityError, violations[0].Severity)
	})

	t.Run("skipped_when_range_unset", func(t *testing.T) {
		item := validItem()
		item.Quantity = 5000
		assert.Empty(t, r.Check(&item, profile.ValidationRules{}))
	})
}

func TestPriceRange(t *testing.T) {
	r := findRule(t, "price_range")

	t.Run("pass", func(t *testing.T) {
		item := validItem()
		assert.Empty(t, r.Check(&item, bounds()))
	})

	t.Run("fail_names_the_field", func(t *testing.T) {
		item := validItem()
		item.UnitPrice = 99999
		violations := r.Check(&item, bounds())
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0].Message, "unit_price")
	})

	t.Run("unextracted_zero_fields_not_flagged", func(t *testing.T) {
		item := validItem()
		item.NetUnitPrice = 0 // pattern did not map this field
		assert.Empty(t, r.Check(&item, bounds()))
	})
}

func TestDiscountBounds(t *testing.T) {
	r := findRule(t, "discount_bounds")

	item := validItem()
	item.DiscountPercent = 120
	violations := r.Check(&item, bounds())
	require.Len(t, violations, 1)
	assert.Equal(t, domain.ValidationSeverityError, violations[0].Severity)
}

func TestDiscountExpected(t *testing.T) {
	r := findRule(t, "discount_expected")

	t.Run("member_passes", func(t *testing.T) {
		item := validItem()
		item.DiscountPercent = 5
		assert.Empty(t, r.Check(&item, bounds()))
	})

	t.Run("non_member_is_warning_only", func(t *testing.T) {
		item := validItem()
		item.DiscountPercent = 7.5
		violations := r.Check(&item, bounds())
		require.Len(t, violations, 1)
		assert.Equal(t, domain.ValidationSeverityWarning, violations[0].Severity)
	})

	t.Run("skipped_when_set_empty", func(t *testing.T) {
		item := validItem()
		item.DiscountPercent = 7.5
		assert.Empty(t, r.Check(&item, profile.ValidationRules{}))
	})
}

func TestTotalReconciliation(t *testing.T) {
	r := findRule(t, "total_reconciliation")

	t.Run("exact_total_passes", func(t *testing.T) {
		item := validItem() // 10 × 76.35 × 1.00 = 763.50
		assert.Empty(t, r.Check(&item, bounds()))
	})

	t.Run("rounding_drift_within_tolerance_passes", func(t *testing.T) {
		item := validItem()
		item.TotalPrice = 763.90
		assert.Empty(t, r.Check(&item, bounds()))
	})

	t.Run("discounted_total_passes", func(t *testing.T) {
		item := validItem()
		item.DiscountPercent = 10
		item.TotalPrice = 687.15 // 10 × 76.35 × 0.90
		assert.Empty(t, r.Check(&item, bounds()))
	})

	t.Run("mismatch_is_advisory_warning", func(t *testing.T) {
		item := validItem()
		item.TotalPrice = 900
		violations := r.Check(&item, bounds())
		require.Len(t, violations, 1)
		assert.Equal(t, domain.ValidationSeverityWarning, violations[0].Severity)
	})

	t.Run("skipped_without_enough_fields", func(t *testing.T) {
		item := validItem()
		item.UnitPrice = 0
		item.TotalPrice = 12345
		assert.Empty(t, r.Check(&item, bounds()))
	})
}

func TestApply(t *testing.T) {
	items := []domain.LineItem{
		validItem(),
		{Code: "X", Quantity: 9999, UnitPrice: 10, TotalPrice: 99990, DiscountPercent: 7.5},
	}
	Apply(items, bounds())

	assert.True(t, items[0].Validation.Valid())
	assert.False(t, items[0].Validation.Flagged())

	assert.False(t, items[1].Validation.Valid())
	keys := make([]string, 0, len(items[1].Validation.Violations))
	for _, v := range items[1].Validation.Violations {
		keys = append(keys, v.RuleKey)
	}
	assert.Contains(t, keys, "quantity_range")
	assert.Contains(t, keys, "price_range")
	assert.Contains(t, keys, "discount_expected")
}
