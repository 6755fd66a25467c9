package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStaffCode(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidStaffCode("0001-0042"))
	assert.True(t, IsValidStaffCode("9999-9999"))
	assert.False(t, IsValidStaffCode("1-42"))
	assert.False(t, IsValidStaffCode("00010042"))
	assert.False(t, IsValidStaffCode("abcd-efgh"))
	assert.False(t, IsValidStaffCode(""))
}

func TestIsValidPIN(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPIN("1234"))
	assert.True(t, IsValidPIN("123456"))
	assert.False(t, IsValidPIN("123"))
	assert.False(t, IsValidPIN("1234567"))
	assert.False(t, IsValidPIN("12a4"))
	assert.False(t, IsValidPIN(""))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2026-02-28")
	assert.True(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("28/02/2026")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDateTime("2026-02-28T09:00:00+09:00")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2026-02-28T09:00:00Z")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2026-02-28 09:00:00")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "pin", Message: "must be 4 to 6 digits"},
		{Field: "code", Message: "is required"},
	}
	m := errs.ToMap()
	assert.Equal(t, "must be 4 to 6 digits", m["pin"])
	assert.Equal(t, "is required", m["code"])
	assert.Contains(t, errs.Error(), "pin: must be 4 to 6 digits")
}
