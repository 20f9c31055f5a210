package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalBooks int
		pageSize   int
		want       int
	}{
		{name: "fifty_books_two_per_page", totalBooks: 50, pageSize: 2, want: 25},
		{name: "partial_last_page_rounds_up", totalBooks: 7, pageSize: 3, want: 3},
		{name: "exact_fit", totalBooks: 10, pageSize: 10, want: 1},
		{name: "fewer_than_one_page", totalBooks: 3, pageSize: 10, want: 1},
		{name: "no_records_means_no_pages", totalBooks: 0, pageSize: 10, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, totalPages(tc.totalBooks, tc.pageSize))
		})
	}
}

func TestFiltersLimitOffset(t *testing.T) {
	f := Filters{Page: 3, PageSize: 10}

	assert.Equal(t, 10, f.limit())
	assert.Equal(t, 20, f.offset())

	first := Filters{Page: 1, PageSize: 10}
	assert.Equal(t, 0, first.offset())
}
