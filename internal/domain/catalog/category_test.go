package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homehands/marketplace-api/internal/domain/catalog"
)

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"air-conditioner", "Air Conditioner"},
		{"house_keeping", "House Keeping"},
		{"PLUMBING", "Plumbing"},
		{"  gardening  ", "Gardening"},
		{"water-heaters", "Water Heaters"},
		{"interior design", "Interior Design"},
		{"", ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, catalog.NormalizeCategory(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeCategoryNeverYieldsAllInOne(t *testing.T) {
	// "all-in-one" title-cases to "All In One", which is not a member of
	// the enumeration, so the filter treats it as an unknown category
	got := catalog.NormalizeCategory("all-in-one")
	require.NotEqual(t, catalog.AllInOne, got)
	require.False(t, catalog.IsCategory(got))
}

func TestIsCategory(t *testing.T) {
	require.True(t, catalog.IsCategory("Air Conditioner"))
	require.True(t, catalog.IsCategory("All in One"))
	require.False(t, catalog.IsCategory("air conditioner"))
	require.False(t, catalog.IsCategory("Nuclear Engineering"))
	require.False(t, catalog.IsCategory(""))
}

func TestServiceCategoriesExcludeAllInOne(t *testing.T) {
	got := catalog.ServiceCategories()
	require.Len(t, got, len(catalog.Categories)-1)
	require.NotContains(t, got, catalog.AllInOne)
	require.Contains(t, got, "Plumbing")
}
