package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "edit link with fragment gid",
			in:   "https://docs.google.com/spreadsheets/d/1AbC-d_9/edit#gid=123456",
			want: "https://docs.google.com/spreadsheets/d/1AbC-d_9/export?format=csv&gid=123456",
		},
		{
			name: "edit link without gid defaults to first tab",
			in:   "https://docs.google.com/spreadsheets/d/1AbC/edit?usp=sharing",
			want: "https://docs.google.com/spreadsheets/d/1AbC/export?format=csv&gid=0",
		},
		{
			name: "query gid",
			in:   "https://docs.google.com/spreadsheets/d/1AbC/edit?gid=42&usp=sharing",
			want: "https://docs.google.com/spreadsheets/d/1AbC/export?format=csv&gid=42",
		},
		{
			name: "already an export url",
			in:   "https://docs.google.com/spreadsheets/d/1AbC/export?format=csv&gid=7",
			want: "https://docs.google.com/spreadsheets/d/1AbC/export?format=csv&gid=7",
		},
		{
			name: "legacy open link",
			in:   "https://docs.google.com/open?id=1XyZ",
			want: "https://docs.google.com/spreadsheets/d/1XyZ/export?format=csv&gid=0",
		},
		{
			name: "published link",
			in:   "https://docs.google.com/spreadsheets/d/e/2PACX-1vQ/pubhtml?gid=9",
			want: "https://docs.google.com/spreadsheets/d/e/2PACX-1vQ/pub?output=csv&gid=9",
		},
		{
			name: "unknown url passes through",
			in:   "https://example.com/data.csv",
			want: "https://example.com/data.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeURL_Empty(t *testing.T) {
	_, err := NormalizeURL("   ")
	assert.ErrorIs(t, err, ErrEmptyURL)
}
