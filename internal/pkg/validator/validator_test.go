package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"admin@attendo.app",
		"first.last@example.co.ke",
		"user+tag@example.com",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0"))
	assert.True(t, IsNumeric("254712345678"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12a"))
	assert.False(t, IsNumeric("+254"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-06-01")
	require.True(t, ok)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, 6, int(date.Month()))
	assert.Equal(t, 1, date.Day())

	_, ok = IsValidDate("01/06/2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidClock(t *testing.T) {
	assert.True(t, IsValidClock("08:30"))
	assert.True(t, IsValidClock("23:59"))
	assert.False(t, IsValidClock("8:30am"))
	assert.False(t, IsValidClock("24:00"))
	assert.False(t, IsValidClock(""))
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"pending", "approved", "rejected"}
	assert.True(t, IsInSlice("approved", statuses))
	assert.False(t, IsInSlice("Approved", statuses))
	assert.False(t, IsInSlice("cancelled", statuses))
	assert.False(t, IsInSlice("pending", nil))
}

func TestIsValidDateTime(t *testing.T) {
	ts, ok := IsValidDateTime("2025-06-01T08:30:00Z")
	require.True(t, ok)
	assert.Equal(t, 8, ts.UTC().Hour())

	ts, ok = IsValidDateTime("2025-06-01T08:30:00+03:00")
	require.True(t, ok)
	assert.Equal(t, 5, ts.UTC().Hour())

	_, ok = IsValidDateTime("2025-06-01 08:30:00")
	assert.False(t, ok)
	_, ok = IsValidDateTime("2025-06-01")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}

	assert.Equal(t, "name: name is required; date: date must be in YYYY-MM-DD format", errs.Error())
	assert.Equal(t, map[string]string{
		"name": "name is required",
		"date": "date must be in YYYY-MM-DD format",
	}, errs.ToMap())
}
