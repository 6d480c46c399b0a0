package services

import (
	"fmt"

	"github.com/flipSOsigma/catering-app/models"
)

// ValidationResult adalah hasil terstruktur pemeriksaan order. Validasi
// tidak pernah melempar error: order yang cacat menghasilkan IsValid false
// plus pesan dari aturan pertama yang gagal, urutan aturannya tetap.
type ValidationResult struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`
}

// categoryRules memetakan aturan per kategori supaya tidak ada lagi
// perbandingan string kategori tersebar di handler.
type categoryRules struct {
	// checkGuestThresholds -> aturan ambang porsi vs tamu (khusus Wedding).
	checkGuestThresholds bool
}

var rulesByCategory = map[models.Category]categoryRules{
	models.CategoryWedding: {checkGuestThresholds: true},
	models.CategoryRicebox: {checkGuestThresholds: false},
}

// Validate memeriksa order kandidat dan berhenti di aturan pertama yang
// gagal. Section yang tidak ada dihitung 0 porsi, bukan pelanggaran.
func Validate(o models.Order) ValidationResult {
	if o.EventName == "" {
		return invalid("Event name is required")
	}

	if o.Customer.Name == "" || o.Customer.Phone == "" || o.Customer.Email == "" {
		return invalid("All customer fields are required")
	}

	if o.Event.Location == "" || o.Event.Building == "" || o.Event.Date == "" || o.Event.Time == "" {
		return invalid("All event fields are required")
	}

	if !hasNamedPortion(o) {
		return invalid("At least one menu item with portion count > 0 is required")
	}

	rules := rulesByCategory[o.Event.Category]
	if rules.checkGuestThresholds {
		buffet := o.PortionCountOf(models.SectionBuffet)
		menu := o.PortionCountOf(models.SectionMenuPondokan)
		dessert := o.PortionCountOf(models.SectionDessert)

		if buffet+menu < o.Visitor*3 {
			return invalid(fmt.Sprintf(
				"Total Buffet + Menu portions (%d) must be at least %d (visitors × 3)",
				buffet+menu, o.Visitor*3))
		}

		if buffet+dessert < o.Visitor {
			return invalid(fmt.Sprintf(
				"Total Buffet + Dessert portions (%d) must be at least %d (number of visitors)",
				buffet+dessert, o.Visitor))
		}
	}

	return ValidationResult{IsValid: true}
}

func hasNamedPortion(o models.Order) bool {
	for _, sec := range o.Sections {
		for _, p := range sec.Portions {
			if p.Name != "" && p.Count > 0 {
				return true
			}
		}
	}
	return false
}

func invalid(message string) ValidationResult {
	return ValidationResult{IsValid: false, Message: message}
}
