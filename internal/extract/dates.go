// Package extract implements the profile-driven extraction engine: date
// normalization, metadata field extraction, and line-item pattern matching.
// Everything here is pure computation over the input text and an immutable
// profile, so concurrent calls need no coordination.
package extract

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"invoscan/internal/profile"
)

// centuryPivot disambiguates two-digit years: values below it are 20xx,
// values at or above it are 19xx. Fixed policy, not per-profile config.
const centuryPivot = 50

// genericLayouts are tried, in order, when a token fails structured parsing
// or carries no declared format.
var genericLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02/01/06",
	"2 January 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
}

// NormalizeDate converts a captured date token to canonical YYYY-MM-DD.
// format is one of the profile date format tags, or empty for the generic
// path. Parsing failures never propagate as errors: the token is returned
// verbatim so the caller still sees what the document said.
func NormalizeDate(token, format string) string {
	token = strings.TrimSpace(token)

	switch format {
	case profile.DateFormatDMY2, profile.DateFormatDMY4:
		if out, ok := parseDayMonthYear(token); ok {
			return out
		}
	}

	if out, ok := parseGeneric(token); ok {
		return out
	}

	log.Printf("extract.NormalizeDate: could not parse %q (format %q), passing through", token, format)
	return token
}

// parseDayMonthYear handles the slash-separated day/month/year shape,
// expanding two-digit years around the century pivot and rejecting
// impossible calendar dates (time.Date normalizes overflow, so the
// components are compared after construction).
func parseDayMonthYear(token string) (string, bool) {
	parts := strings.Split(token, "/")
	if len(parts) != 3 {
		return "", false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}

	if len(parts[2]) == 2 {
		if year < centuryPivot {
			year += 2000
		} else {
			year += 1900
		}
	}

	dt := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if dt.Year() != year || dt.Month() != time.Month(month) || dt.Day() != day {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

func parseGeneric(token string) (string, bool) {
	for _, layout := range genericLayouts {
		if dt, err := time.Parse(layout, token); err == nil {
			return dt.Format("2006-01-02"), true
		}
	}
	return "", false
}
