package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adyatma/bookcatalog/internal/validator"
)

func TestNewValidatorIsValid(t *testing.T) {
	v := validator.New()

	assert.True(t, v.Valid())
	assert.Empty(t, v.Message())
}

func TestCheckRecordsFailuresOnly(t *testing.T) {
	v := validator.New()

	v.Check(true, "title", "Title is required")
	v.Check(false, "stock", "Stock must be a positive integer")

	assert.False(t, v.Valid())
	assert.NotContains(t, v.Errors, "title")
	assert.Equal(t, "Stock must be a positive integer", v.Errors["stock"])
}

func TestFirstFailurePerFieldWins(t *testing.T) {
	v := validator.New()

	v.AddError("publishedYear", "Published year must be at least 1000")
	v.AddError("publishedYear", "Published year must be at most 9999")

	assert.Equal(t, "Published year must be at least 1000", v.Errors["publishedYear"])
	assert.Equal(t, "Published year must be at least 1000", v.Message())
}

func TestMessageJoinsInFailureOrder(t *testing.T) {
	v := validator.New()

	v.AddError("title", "Title is required")
	v.AddError("author", "Author is required")
	v.AddError("stock", "Stock must be a positive integer")

	want := "Title is required, Author is required, Stock must be a positive integer"
	assert.Equal(t, want, v.Message())
}
