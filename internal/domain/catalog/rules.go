package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/homehands/marketplace-api/internal/httperr"
)

// ===============================
// Service listing rules
// ===============================

var maxPrice = decimal.RequireFromString("999.99")

// NormalizeName collapses all runs of whitespace to single spaces and trims
// the ends.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeDescription trims the ends and collapses spaces and tabs inside
// each line, but keeps line breaks so paragraphs survive.
func NormalizeDescription(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}

// ValidateListing checks an already-normalized service listing. The field
// check against the owning company's field of work lives in CanListIn.
func ValidateListing(name, description string, price decimal.Decimal) error {
	if len(name) < 3 || len(name) > 40 {
		return httperr.ErrValidation("name")
	}
	if len(description) < 10 {
		return httperr.ErrValidation("description")
	}
	if !price.IsPositive() || price.GreaterThan(maxPrice) {
		return httperr.ErrValidation("price_per_hour")
	}
	return nil
}

// CanListIn decides whether a company with companyField may publish a
// service in field. An "All in One" company may list in any real category;
// every other company only in its own.
func CanListIn(companyField, field string) error {
	if field == AllInOne || !IsCategory(field) {
		return httperr.ErrValidation("field")
	}
	if companyField != AllInOne && companyField != field {
		return httperr.ErrBusiness(httperr.CodeFieldMismatch)
	}
	return nil
}
