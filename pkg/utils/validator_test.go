package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{"081234567890", "6281234567", "+6289876543210", "085123456"}
	invalid := []string{"", "0812", "071234567890", "+6280123456", "08123456789012345", "0812-3456-789"}

	for _, p := range valid {
		assert.True(t, IsValidPhone(p), p)
	}
	for _, p := range invalid {
		assert.False(t, IsValidPhone(p), p)
	}
}

func TestValidateStruct_CustomTags(t *testing.T) {
	type payload struct {
		Phone string `validate:"required,idphone"`
		Type  string `validate:"required,linktype"`
	}

	errs := ValidateStruct(payload{Phone: "12345", Type: "tab"})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs["Phone"], "phone")
	assert.Equal(t, "Must be one of: single, folder", errs["Type"])

	assert.Nil(t, ValidateStruct(payload{Phone: "081234567890", Type: "folder"}))
}

func TestFormatValidationErrors_Sorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"b": "two", "a": "one"})
	assert.Equal(t, "a: one; b: two", got)
}
