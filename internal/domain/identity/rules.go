package identity

import (
	"strings"
	"time"

	"github.com/homehands/marketplace-api/internal/httperr"
)

// ===============================
// Account rules
// ===============================

// ValidatePassword enforces the credential policy: at least 8 characters
// and not entirely numeric.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return httperr.ErrBusiness(httperr.CodeWeakPassword)
	}
	allDigits := true
	for _, r := range password {
		if r < '0' || r > '9' {
			allDigits = false
			break
		}
	}
	if allDigits {
		return httperr.ErrBusiness(httperr.CodeWeakPassword)
	}
	return nil
}

func ValidateUsername(username string) error {
	if l := len(username); l < 3 || l > 100 {
		return httperr.ErrValidation("username")
	}
	if strings.ContainsAny(username, " \t\n") {
		return httperr.ErrValidation("username")
	}
	return nil
}

// ValidateBirthDate rejects dates in the future. Both values are compared
// as calendar dates, ignoring the time of day.
func ValidateBirthDate(birth, today time.Time) error {
	if toDate(birth).After(toDate(today)) {
		return httperr.ErrBusiness(httperr.CodeInvalidBirthDate)
	}
	return nil
}

// Age in whole years at today, not yet counting this year's birthday if it
// has not happened.
func Age(birth, today time.Time) int {
	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	return years
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
