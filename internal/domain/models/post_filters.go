package model

import "strings"

// SearchFields are the post fields matched by a text search.
var SearchFields = []string{"category", "title", "author", "content"}

type PostFilters struct {
	// Category matches the category field exactly.
	Category *string
	// SearchKey matches any of SearchFields as a case-insensitive substring.
	SearchKey *string
}

// Matches reports whether post satisfies every set filter. Non-string field
// values never match.
func (f PostFilters) Matches(post Post) bool {
	if f.Category != nil {
		category, ok := post.StringField("category")
		if !ok || category != *f.Category {
			return false
		}
	}

	if f.SearchKey != nil {
		key := strings.ToLower(*f.SearchKey)
		found := false
		for _, field := range SearchFields {
			value, ok := post.StringField(field)
			if ok && strings.Contains(strings.ToLower(value), key) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
