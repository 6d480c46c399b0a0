package documents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDate(iso string) time.Time {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "17 Agustus 2025", formatLongDate("2025-08-17"))
	assert.Equal(t, "1 Januari 2026", formatLongDate("2026-01-01"))
	// Tanggal rusak dicetak apa adanya
	assert.Equal(t, "besok", formatLongDate("besok"))
}

func TestFormatHeaderDate(t *testing.T) {
	assert.Equal(t, "Semarang, 17 Agustus 2025", formatHeaderDate("2025-08-17"))
}

func TestFormatFullDate(t *testing.T) {
	// 17 Agustus 2025 jatuh di hari Minggu
	assert.Equal(t, "Minggu, 17 Agustus 2025", FormatFullDate("2025-08-17"))
	assert.Equal(t, "17/08", FormatFullDate("17/08"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "Rp0", formatCurrency(0))
	assert.Equal(t, "Rp1.500.000", formatCurrency(1500000))
}

func TestSubtractHours(t *testing.T) {
	assert.Equal(t, "08:00", subtractHours("11:00", 3))
	// Lewat tengah malam tetap di hari yang sama
	assert.Equal(t, "22:00", subtractHours("01:00", 3))
	assert.Equal(t, "23:30", subtractHours("02:30", 3))
	// Jam tak terparse dikembalikan mentah
	assert.Equal(t, "siang", subtractHours("siang", 3))
}
