package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "blog-service/internal/domain/models"
)

func ptr(s string) *string { return &s }

func TestPostFilters_Matches(t *testing.T) {
	post := model.Post{
		"category": "tech",
		"title":    "Hello World",
		"author":   "Ann",
		"content":  "Go generics",
		"views":    10,
	}

	tests := []struct {
		name    string
		filters model.PostFilters
		want    bool
	}{
		{name: "no filters", filters: model.PostFilters{}, want: true},
		{name: "exact category", filters: model.PostFilters{Category: ptr("tech")}, want: true},
		{name: "category is case sensitive", filters: model.PostFilters{Category: ptr("Tech")}, want: false},
		{name: "category is not substring", filters: model.PostFilters{Category: ptr("te")}, want: false},
		{name: "search title ignoring case", filters: model.PostFilters{SearchKey: ptr("hello")}, want: true},
		{name: "search author", filters: model.PostFilters{SearchKey: ptr("ANN")}, want: true},
		{name: "search content substring", filters: model.PostFilters{SearchKey: ptr("generic")}, want: true},
		{name: "search category substring", filters: model.PostFilters{SearchKey: ptr("ec")}, want: true},
		{name: "search ignores non-string fields", filters: model.PostFilters{SearchKey: ptr("10")}, want: false},
		{name: "search miss", filters: model.PostFilters{SearchKey: ptr("rust")}, want: false},
		{name: "regex characters are literal", filters: model.PostFilters{SearchKey: ptr("h.llo")}, want: false},
		{
			name:    "both filters must hold",
			filters: model.PostFilters{Category: ptr("life"), SearchKey: ptr("hello")},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Matches(post))
		})
	}
}
