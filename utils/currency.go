package utils

import (
	"fmt"
	"strings"
)

// FormatRupiah memformat Rupiah bulat dengan pemisah ribuan gaya id-ID,
// tanpa desimal. Contoh: 1500000 -> "Rp1.500.000".
// Harga katering selalu Rupiah utuh, jadi tidak ada bagian pecahan.
func FormatRupiah(amount int) string {
	return "Rp" + GroupThousands(amount)
}

// GroupThousands -> "1.500.000" tanpa prefix mata uang.
func GroupThousands(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)

	// Sisipkan titik setiap 3 digit dari belakang
	var groups []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{digits[start:i]}, groups...)
	}

	return sign + strings.Join(groups, ".")
}

// ParseAmount membaca input angka bebas format ("1.500.000", "Rp 2000",
// "abc") menjadi Rupiah bulat. Karakter non-digit dibuang; input yang tidak
// mengandung digit menjadi 0, bukan error, supaya total selalu terdefinisi.
func ParseAmount(raw string) int {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	var n int
	fmt.Sscanf(b.String(), "%d", &n)
	return n
}
