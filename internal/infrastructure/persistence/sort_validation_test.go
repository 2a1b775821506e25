package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"asc lowercase", "asc", "ASC"},
		{"asc uppercase", "ASC", "ASC"},
		{"asc with spaces", "  asc  ", "ASC"},
		{"desc lowercase", "desc", "DESC"},
		{"empty defaults to desc", "", "DESC"},
		{"garbage defaults to desc", "ascending; DROP TABLE", "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortOrder(tt.input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	t.Run("accepts whitelisted field", func(t *testing.T) {
		assert.Equal(t, "name", ValidateSortField("name", MaterialSortFields, "created_at"))
	})

	t.Run("rejects non-whitelisted field", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("password_hash", MaterialSortFields, "created_at"))
	})

	t.Run("rejects injection attempt", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("name; DROP TABLE materials", MaterialSortFields, "created_at"))
	})

	t.Run("empty input falls back to default", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("", ProductSortFields, "created_at"))
	})

	t.Run("trims whitespace", func(t *testing.T) {
		assert.Equal(t, "sku", ValidateSortField("  sku  ", ProductSortFields, "created_at"))
	})
}
