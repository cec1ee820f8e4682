package validator

import (
	"fmt"
	"math"

	"invoscan/internal/domain"
	"invoscan/internal/profile"
)

// reconTolerance absorbs the rounding drift source documents carry when
// reconciling a line total against quantity × price × (1 − discount/100).
const reconTolerance = 0.5

// rangeRule bounds-checks one aspect of a line item.
type rangeRule struct {
	ruleKey  string
	ruleName string
	severity domain.ValidationSeverity
	check    func(*domain.LineItem, profile.ValidationRules) []domain.RuleViolation
}

func (r *rangeRule) RuleKey() string                     { return r.ruleKey }
func (r *rangeRule) RuleName() string                    { return r.ruleName }
func (r *rangeRule) Severity() domain.ValidationSeverity { return r.severity }

func (r *rangeRule) Check(item *domain.LineItem, bounds profile.ValidationRules) []domain.RuleViolation {
	return r.check(item, bounds)
}

func violation(key string, sev domain.ValidationSeverity, format string, args ...interface{}) domain.RuleViolation {
	return domain.RuleViolation{RuleKey: key, Severity: sev, Message: fmt.Sprintf(format, args...)}
}

// rangeSet reports whether a min/max pair is configured at all.
func rangeSet(min, max float64) bool {
	return min != 0 || max != 0
}

// Rules returns the built-in rules in evaluation order.
func Rules() []Rule {
	return []Rule{
		&rangeRule{
			ruleKey: "quantity_range", ruleName: "Quantity within profile range",
			severity: domain.ValidationSeverityError,
			check: func(item *domain.LineItem, b profile.ValidationRules) []domain.RuleViolation {
				if !rangeSet(b.QuantityMin, b.QuantityMax) {
					return nil
				}
				if item.Quantity < b.QuantityMin || item.Quantity > b.QuantityMax {
					return []domain.RuleViolation{violation("quantity_range", domain.ValidationSeverityError,
						"quantity %.2f outside [%.2f, %.2f]", item.Quantity, b.QuantityMin, b.QuantityMax)}
				}
				return nil
			},
		},
		&rangeRule{
			ruleKey: "price_range", ruleName: "Prices within profile range",
			severity: domain.ValidationSeverityError,
			check: func(item *domain.LineItem, b profile.ValidationRules) []domain.RuleViolation {
				if !rangeSet(b.PriceMin, b.PriceMax) {
					return nil
				}
				var out []domain.RuleViolation
				prices := map[string]float64{
					"unit_price":     item.UnitPrice,
					"net_unit_price": item.NetUnitPrice,
					"total_price":    item.TotalPrice,
				}
				// Deterministic order for stable output.
				for _, name := range []string{"unit_price", "net_unit_price", "total_price"} {
					v := prices[name]
					if v == 0 {
						continue // field not extracted by this pattern
					}
					if v < b.PriceMin || v > b.PriceMax {
						out = append(out, violation("price_range", domain.ValidationSeverityError,
							"%s %.2f outside [%.2f, %.2f]", name, v, b.PriceMin, b.PriceMax))
					}
				}
				return out
			},
		},
		&rangeRule{
			ruleKey: "discount_bounds", ruleName: "Discount between 0 and 100",
			severity: domain.ValidationSeverityError,
			check: func(item *domain.LineItem, _ profile.ValidationRules) []domain.RuleViolation {
				if item.DiscountPercent < 0 || item.DiscountPercent > 100 {
					return []domain.RuleViolation{violation("discount_bounds", domain.ValidationSeverityError,
						"discount %.2f%% outside [0, 100]", item.DiscountPercent)}
				}
				return nil
			},
		},
		&rangeRule{
			ruleKey: "discount_expected", ruleName: "Discount among expected values",
			severity: domain.ValidationSeverityWarning,
			check: func(item *domain.LineItem, b profile.ValidationRules) []domain.RuleViolation {
				if len(b.ExpectedDiscounts) == 0 {
					return nil
				}
				for _, d := range b.ExpectedDiscounts {
					if item.DiscountPercent == d {
						return nil
					}
				}
				return []domain.RuleViolation{violation("discount_expected", domain.ValidationSeverityWarning,
					"discount %.2f%% not among expected values %v", item.DiscountPercent, b.ExpectedDiscounts)}
			},
		},
		&rangeRule{
			ruleKey: "total_reconciliation", ruleName: "Line total reconciles with qty × price × discount",
			severity: domain.ValidationSeverityWarning,
			check: func(item *domain.LineItem, _ profile.ValidationRules) []domain.RuleViolation {
				if item.Quantity == 0 || item.UnitPrice == 0 || item.TotalPrice == 0 {
					return nil // not enough extracted fields to reconcile
				}
				expected := item.Quantity * item.UnitPrice * (1 - item.DiscountPercent/100)
				if math.Abs(item.TotalPrice-expected) > reconTolerance {
					return []domain.RuleViolation{violation("total_reconciliation", domain.ValidationSeverityWarning,
						"total %.2f does not reconcile with %.2f × %.2f at %.2f%% discount (expected %.2f)",
						item.TotalPrice, item.Quantity, item.UnitPrice, item.DiscountPercent, expected)}
				}
				return nil
			},
		},
	}
}
