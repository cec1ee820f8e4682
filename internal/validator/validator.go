// Package validator checks extracted line items against a profile's bounds.
// Violations are advisory flags for human review; extraction is never
// aborted by a failing rule.
package validator

import (
	"invoscan/internal/domain"
	"invoscan/internal/profile"
)

// Rule is a single built-in validation check.
type Rule interface {
	RuleKey() string
	RuleName() string
	Severity() domain.ValidationSeverity
	Check(item *domain.LineItem, bounds profile.ValidationRules) []domain.RuleViolation
}

// Apply runs every built-in rule over each item, in rule order, and attaches
// the collected violations to the item. Items are annotated in place and in
// sequence order; none are dropped.
func Apply(items []domain.LineItem, bounds profile.ValidationRules) {
	rules := Rules()
	for i := range items {
		var violations []domain.RuleViolation
		for _, r := range rules {
			violations = append(violations, r.Check(&items[i], bounds)...)
		}
		items[i].Validation = domain.ValidationResult{Violations: violations}
	}
}
