package utils_test

import (
	"testing"

	"cinema_storefront/utils"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2025-01-10", utils.NormalizeDate("2025-01-10T19:30:00Z"))
	assert.Equal(t, "2025-01-10", utils.NormalizeDate("2025-01-10T19:30:00"))
	assert.Equal(t, "2025-01-10", utils.NormalizeDate("2025-01-10"))
	// không parse được thì giữ nguyên
	assert.Equal(t, "10/01/2025", utils.NormalizeDate("10/01/2025"))
}

func TestNormalizeTime(t *testing.T) {
	assert.Equal(t, "19:30", utils.NormalizeTime("2025-01-10T19:30:00Z"))
	assert.Equal(t, "19:30", utils.NormalizeTime("19:30:00"))
	assert.Equal(t, "19:30", utils.NormalizeTime("19:30"))
	assert.Equal(t, "7h30", utils.NormalizeTime("7h30"))
}
