package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQueryDefaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, DefaultPerPage, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
	assert.Empty(t, filter.Search)
}

func TestParseFilterFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("per_page", "25")
	values.Set("search", "cardio")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 25, filter.Limit)
	assert.Equal(t, 50, filter.Offset)
	assert.Equal(t, "cardio", filter.Search)
}

func TestParseFilterFromQueryClampsPerPage(t *testing.T) {
	values := url.Values{}
	values.Set("per_page", "9999")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, MaxPerPage, filter.Limit)
}

func TestParseFilterFromQueryIgnoresGarbage(t *testing.T) {
	values := url.Values{}
	values.Set("page", "-2")
	values.Set("per_page", "abc")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, DefaultPerPage, filter.Limit)
}
