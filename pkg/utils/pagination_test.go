package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{"empty", 0, 10, 0},
		{"exact", 20, 10, 2},
		{"remainder", 21, 10, 3},
		{"single partial page", 3, 6, 1},
		{"zero per page", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotalPages(tt.total, tt.perPage))
		})
	}
}

func TestPagesCoverEveryRecordExactlyOnce(t *testing.T) {
	for _, total := range []int64{0, 1, 5, 6, 7, 13, 100} {
		for _, limit := range []int{1, 3, 6, 10} {
			pages := CalculateTotalPages(total, limit)
			var seen int64
			for p := 1; p <= pages; p++ {
				offset := CalculateOffset(p, limit)
				size := int64(limit)
				if remaining := total - int64(offset); remaining < size {
					size = remaining
				}
				assert.Positive(t, size, "page %d of %d must not be empty", p, pages)
				seen += size
			}
			assert.Equal(t, total, seen, "total=%d limit=%d", total, limit)
		}
	}
}

func TestNormalizePage(t *testing.T) {
	page, limit := NormalizePage(0, 0, 6)
	assert.Equal(t, 1, page)
	assert.Equal(t, 6, limit)

	page, limit = NormalizePage(3, 500, 6)
	assert.Equal(t, 3, page)
	assert.Equal(t, MaxPageLimit, limit)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 20, CalculateOffset(3, 10))
	assert.Equal(t, 0, CalculateOffset(-1, 10))
}
