package utils_test

import (
	"testing"
	"time"

	"github.com/daftari-app/daftari/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestFormatDateArabic(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"mid month", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "١٥/٠١/٢٠٢٤"},
		{"single digit day", time.Date(2023, 12, 5, 10, 30, 0, 0, time.UTC), "٠٥/١٢/٢٠٢٣"},
		{"new year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "٠١/٠١/٢٠٢٥"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.FormatDateArabic(tc.date))
		})
	}
}

func TestFormatDateHijri(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected string
	}{
		// Anchors of the tabular calendar this approximation follows.
		{"new year 1445", time.Date(2023, 7, 19, 12, 0, 0, 0, time.UTC), "١/١/١٤٤٥"},
		{"ramadan 1445", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), "١/٩/١٤٤٥"},
		{"year end 1445", time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC), "٣٠/١٢/١٤٤٥"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.FormatDateHijri(tc.date))
		})
	}
}

func TestFormatDateHijriAdvancesDaily(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := utils.FormatDateHijri(start)
	for d := 1; d <= 60; d++ {
		cur := utils.FormatDateHijri(start.AddDate(0, 0, d))
		assert.NotEqual(t, prev, cur)
		prev = cur
	}
}
