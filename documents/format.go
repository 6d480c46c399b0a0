package documents

import (
	"fmt"
	"time"

	"github.com/flipSOsigma/catering-app/utils"
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var indonesianDays = map[time.Weekday]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

// formatLongDate -> "2 Januari 2006" dari tanggal ISO. Tanggal yang tidak
// bisa diparse dicetak apa adanya supaya dokumen tetap jadi.
func formatLongDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

// formatHeaderDate -> "Semarang, 2 Januari 2006", gaya kop surat usaha.
func formatHeaderDate(isoDate string) string {
	return "Semarang, " + formatLongDate(isoDate)
}

// FormatFullDate -> "Senin, 2 Januari 2006" dengan nama hari, dipakai di
// pesan konfirmasi WhatsApp.
func FormatFullDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return fmt.Sprintf("%s, %d %s %d", indonesianDays[t.Weekday()], t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

// formatCurrency -> "Rp1.500.000" tanpa desimal.
func formatCurrency(amount int) string {
	return utils.FormatRupiah(amount)
}

// subtractHours menggeser jam dinding HH:MM mundur tanpa peduli batas hari:
// 01:00 - 3 jam = 22:00 di hari kalender yang sama. Persiapan dapur memang
// dianggap selalu di hari H.
func subtractHours(timeStr string, hours int) string {
	var h, m int
	if _, err := fmt.Sscanf(timeStr, "%d:%d", &h, &m); err != nil {
		return timeStr
	}
	h = ((h-hours)%24 + 24) % 24
	return fmt.Sprintf("%02d:%02d", h, m)
}
