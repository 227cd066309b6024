package pagination_test

import (
	"testing"

	"github.com/andyle182810/easybill/pagination"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		page          int
		limit         int
		expectedPage  int
		expectedLimit int
	}{
		{name: "defaults", page: 0, limit: 0, expectedPage: 1, expectedLimit: 100},
		{name: "negative page", page: -3, limit: 50, expectedPage: 1, expectedLimit: 50},
		{name: "limit above max", page: 2, limit: 5000, expectedPage: 2, expectedLimit: 1000},
		{name: "valid values", page: 4, limit: 25, expectedPage: 4, expectedLimit: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, limit := pagination.Normalize(tt.page, tt.limit)

			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, pagination.ComputeTotals(10, 0))
	assert.Equal(t, 0, pagination.ComputeTotals(0, 100))
	assert.Equal(t, 1, pagination.ComputeTotals(100, 100))
	assert.Equal(t, 2, pagination.ComputeTotals(101, 100))
}

func TestHasNext(t *testing.T) {
	t.Parallel()

	assert.True(t, pagination.HasNext(1, 2))
	assert.False(t, pagination.HasNext(2, 2))
	assert.False(t, pagination.HasNext(1, 0))
}
