package identity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/homehands/marketplace-api/internal/domain/identity"
	"github.com/homehands/marketplace-api/internal/httperr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	birth := date(2000, time.June, 15)

	cases := []struct {
		today time.Time
		want  int
	}{
		{date(2024, time.June, 14), 23},
		{date(2024, time.June, 15), 24},
		{date(2024, time.June, 16), 24},
		{date(2000, time.June, 15), 0},
		{date(2001, time.January, 1), 0},
		{date(2024, time.December, 31), 24},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, identity.Age(birth, tc.today), "today %s", tc.today)
	}
}

func TestValidateBirthDate(t *testing.T) {
	today := date(2024, time.June, 15)

	require.NoError(t, identity.ValidateBirthDate(date(2000, time.June, 15), today))
	require.NoError(t, identity.ValidateBirthDate(today, today))

	// time of day on either side must not matter
	noon := time.Date(2024, time.June, 15, 12, 30, 0, 0, time.UTC)
	require.NoError(t, identity.ValidateBirthDate(noon, today))

	err := identity.ValidateBirthDate(date(2024, time.June, 16), today)
	require.True(t, httperr.IsBusiness(err, httperr.CodeInvalidBirthDate))
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, identity.ValidatePassword("correct-horse-battery"))
	require.NoError(t, identity.ValidatePassword("abc12345"))

	err := identity.ValidatePassword("short")
	require.True(t, httperr.IsBusiness(err, httperr.CodeWeakPassword))

	err = identity.ValidatePassword("1234567890")
	require.True(t, httperr.IsBusiness(err, httperr.CodeWeakPassword))
}

func TestValidateUsername(t *testing.T) {
	require.NoError(t, identity.ValidateUsername("maria_santos"))

	for _, bad := range []string{"ab", "has space", ""} {
		err := identity.ValidateUsername(bad)
		be, ok := httperr.AsBusiness(err)
		require.True(t, ok, "username %q", bad)
		require.Equal(t, "username", be.Field)
	}
}
