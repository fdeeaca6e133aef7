package catalog

import "strings"

// ===============================
// Categories
// ===============================

// AllInOne is a company field only: such a company may list services in
// any category, but no service may itself be "All in One".
const AllInOne = "All in One"

var Categories = []string{
	"Air Conditioner",
	AllInOne,
	"Carpentry",
	"Electricity",
	"Gardening",
	"Home Machines",
	"House Keeping",
	"Interior Design",
	"Locks",
	"Painting",
	"Plumbing",
	"Water Heaters",
}

func IsCategory(field string) bool {
	for _, c := range Categories {
		if c == field {
			return true
		}
	}
	return false
}

// ServiceCategories is Categories minus AllInOne: the values a Service
// may carry.
func ServiceCategories() []string {
	out := make([]string, 0, len(Categories)-1)
	for _, c := range Categories {
		if c != AllInOne {
			out = append(out, c)
		}
	}
	return out
}

// NormalizeCategory turns a URL slug or free-form spelling into the
// canonical category name: separators become spaces and every word is
// title-cased, so "air-conditioner" and "house_keeping" match
// "Air Conditioner" and "House Keeping".
func NormalizeCategory(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
