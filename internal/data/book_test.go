package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adyatma/bookcatalog/internal/validator"
)

func ptr[T any](v T) *T { return &v }

// validBookRequest returns a request that passes the full write schema.
func validBookRequest() BookRequest {
	return BookRequest{
		Title:         ptr("The Left Hand of Darkness"),
		Author:        ptr("Ursula K. Le Guin"),
		PublishedYear: ptr(1969),
		Genres:        []string{"Science Fiction"},
		Stock:         ptr(3),
	}
}

func TestBookRequestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *BookRequest)
		wantMessage string
	}{
		{
			name:   "valid_request_passes",
			mutate: func(r *BookRequest) {},
		},
		{
			name:   "empty_genre_list_is_valid",
			mutate: func(r *BookRequest) { r.Genres = []string{} },
		},
		{
			name:        "absent_title",
			mutate:      func(r *BookRequest) { r.Title = nil },
			wantMessage: `"title" is required`,
		},
		{
			name:        "empty_title",
			mutate:      func(r *BookRequest) { r.Title = ptr("") },
			wantMessage: "Title is required",
		},
		{
			name:        "absent_author",
			mutate:      func(r *BookRequest) { r.Author = nil },
			wantMessage: `"author" is required`,
		},
		{
			name:        "empty_author",
			mutate:      func(r *BookRequest) { r.Author = ptr("") },
			wantMessage: "Author is required",
		},
		{
			name:        "absent_published_year",
			mutate:      func(r *BookRequest) { r.PublishedYear = nil },
			wantMessage: `"publishedYear" is required`,
		},
		{
			name:        "published_year_below_range",
			mutate:      func(r *BookRequest) { r.PublishedYear = ptr(999) },
			wantMessage: "Published year must be at least 1000",
		},
		{
			name:        "published_year_above_range",
			mutate:      func(r *BookRequest) { r.PublishedYear = ptr(10000) },
			wantMessage: "Published year must be at most 9999",
		},
		{
			name:        "absent_genres",
			mutate:      func(r *BookRequest) { r.Genres = nil },
			wantMessage: `"genres" is required`,
		},
		{
			name:        "absent_stock",
			mutate:      func(r *BookRequest) { r.Stock = nil },
			wantMessage: `"stock" is required`,
		},
		{
			name:        "negative_stock",
			mutate:      func(r *BookRequest) { r.Stock = ptr(-1) },
			wantMessage: "Stock must be a positive integer",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			request := validBookRequest()
			tc.mutate(&request)

			v := validator.New()
			request.Validate(v)

			if tc.wantMessage == "" {
				assert.True(t, v.Valid())
				return
			}
			require.False(t, v.Valid())
			assert.Equal(t, tc.wantMessage, v.Message())
		})
	}
}

func TestBookRequestValidateCombinesViolations(t *testing.T) {
	request := validBookRequest()
	request.Title = nil
	request.PublishedYear = ptr(999)
	request.Stock = ptr(-5)

	v := validator.New()
	request.Validate(v)

	require.False(t, v.Valid())
	want := `"title" is required, Published year must be at least 1000, Stock must be a positive integer`
	assert.Equal(t, want, v.Message())
}

func TestBookRequestInput(t *testing.T) {
	request := validBookRequest()

	input := request.Input()

	assert.Equal(t, "The Left Hand of Darkness", input.Title)
	assert.Equal(t, "Ursula K. Le Guin", input.Author)
	assert.Equal(t, 1969, input.PublishedYear)
	assert.Equal(t, []string{"Science Fiction"}, input.Genres)
	assert.Equal(t, 3, input.Stock)
}
