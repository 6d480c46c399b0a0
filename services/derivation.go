package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flipSOsigma/catering-app/models"
	"github.com/flipSOsigma/catering-app/utils"
)

// Engine perhitungan turunan. Semua fungsi di file ini murni: menerima
// snapshot Order by value, mengembalikan snapshot baru dengan seluruh field
// turunan dihitung ulang dari bawah ke atas (portion -> section -> order).
// Snapshot lama tidak pernah disentuh, pemanggil bebas menyimpannya untuk
// perbandingan atau undo.

// Field-field portion yang bisa diubah lewat ApplyPortionChange.
const (
	FieldPortionName  = "portion_name"
	FieldPortionNote  = "portion_note"
	FieldPortionCount = "portion_count"
	FieldPortionPrice = "portion_price"
)

// CloneOrder menyalin order beserta slice sections dan portions-nya.
// Struct Customer/Event tersalin lewat assignment biasa.
func CloneOrder(o models.Order) models.Order {
	out := o
	out.Sections = make([]models.Section, len(o.Sections))
	for i, s := range o.Sections {
		cs := s
		cs.Portions = make([]models.Portion, len(s.Portions))
		copy(cs.Portions, s.Portions)
		out.Sections[i] = cs
	}
	return out
}

// Recalculate menghitung ulang seluruh field turunan dari nilai daun.
// Dipanggil setelah setiap mutasi; menjalankannya dua kali berturut-turut
// menghasilkan order yang identik.
func Recalculate(o models.Order) models.Order {
	out := CloneOrder(o)

	totalPrice := 0
	totalPortion := 0
	for i := range out.Sections {
		sec := &out.Sections[i]

		secPortion := 0
		secPrice := 0
		for j := range sec.Portions {
			p := &sec.Portions[j]
			p.Count = clampNonNegative(p.Count)
			p.Price = clampNonNegative(p.Price)
			p.TotalPrice = p.Count * p.Price
			secPortion += p.Count
			secPrice += p.TotalPrice
		}
		sec.Portion = secPortion
		sec.TotalPrice = secPrice

		totalPortion += secPortion
		totalPrice += secPrice
	}
	out.Price = totalPrice
	out.Portion = totalPortion

	out.Invitation = clampNonNegative(out.Invitation)
	out.AdditionalGuests = clampNonNegative(out.AdditionalGuests)
	if out.Event.Category == models.CategoryWedding {
		out.Visitor = out.Invitation*2 + out.AdditionalGuests
	}

	return out
}

// ReconcileGuests menyesuaikan AdditionalGuests dari payload lama yang hanya
// membawa visitor. Klien lama mengirim visitor utuh; delta tamu tambahan
// direkonstruksi sebagai visitor - invitation*2 sebelum Recalculate
// menurunkan visitor kembali dari kedua input itu.
func ReconcileGuests(o models.Order) models.Order {
	out := CloneOrder(o)
	if out.Event.Category != models.CategoryWedding {
		return out
	}
	delta := out.Visitor - out.Invitation*2
	if delta > out.AdditionalGuests {
		out.AdditionalGuests = delta
	}
	return out
}

// ApplyPortionChange mengubah satu field portion lalu menghitung ulang
// semua total. Nilai count/price berupa string bebas format dan dipaksa ke
// angka non-negatif; input rusak menjadi 0, tidak pernah NaN di total.
func ApplyPortionChange(o models.Order, sectionID, portionID, field, value string) (models.Order, error) {
	out := CloneOrder(o)

	sec := sectionByID(&out, sectionID)
	if sec == nil {
		return o, fmt.Errorf("section %s tidak ditemukan", sectionID)
	}

	var target *models.Portion
	for i := range sec.Portions {
		if sec.Portions[i].ID == portionID {
			target = &sec.Portions[i]
			break
		}
	}
	if target == nil {
		return o, fmt.Errorf("portion %s tidak ditemukan", portionID)
	}

	switch field {
	case FieldPortionName:
		target.Name = value
	case FieldPortionNote:
		target.Note = value
	case FieldPortionCount:
		target.Count = coerceAmount(value)
	case FieldPortionPrice:
		target.Price = coerceAmount(value)
	default:
		return o, fmt.Errorf("field %s tidak dikenal", field)
	}

	return Recalculate(out), nil
}

// SetSectionNote mengganti catatan section. Catatan bukan nilai turunan,
// tapi jalur mutasi tetap satu pintu supaya totalnya ikut terjaga.
func SetSectionNote(o models.Order, sectionID, note string) (models.Order, error) {
	out := CloneOrder(o)
	sec := sectionByID(&out, sectionID)
	if sec == nil {
		return o, fmt.Errorf("section %s tidak ditemukan", sectionID)
	}
	sec.Note = note
	return Recalculate(out), nil
}

// SetEventName mengganti nama acara di order sekaligus di event-nya.
func SetEventName(o models.Order, name string) models.Order {
	out := CloneOrder(o)
	out.EventName = name
	out.Event.Name = name
	return Recalculate(out)
}

// SetOrderNote mengganti catatan pesanan.
func SetOrderNote(o models.Order, note string) models.Order {
	out := CloneOrder(o)
	out.Note = note
	return Recalculate(out)
}

// SetInvitation mengubah jumlah undangan; visitor ikut diturunkan ulang.
func SetInvitation(o models.Order, invitation int) models.Order {
	out := CloneOrder(o)
	out.Invitation = invitation
	return Recalculate(out)
}

// SetAdditionalGuests mengubah delta tamu tambahan di luar undangan x2.
func SetAdditionalGuests(o models.Order, additional int) models.Order {
	out := CloneOrder(o)
	out.AdditionalGuests = additional
	return Recalculate(out)
}

// AddPortion menambahkan baris menu kosong di akhir section.
func AddPortion(o models.Order, sectionID string) (models.Order, error) {
	out := CloneOrder(o)
	sec := sectionByID(&out, sectionID)
	if sec == nil {
		return o, fmt.Errorf("section %s tidak ditemukan", sectionID)
	}
	sec.Portions = append(sec.Portions, models.Portion{
		ID:        fmt.Sprintf("%s-portion-%d-%d", sec.ID, len(sec.Portions), time.Now().UnixMilli()),
		SectionID: sec.ID,
	})
	return Recalculate(out), nil
}

// RemovePortion menghapus satu baris menu. Baris terakhir tidak boleh
// dihapus: section harus selalu punya minimal satu portion, jadi permintaan
// itu jadi no-op dan snapshot dikembalikan apa adanya.
func RemovePortion(o models.Order, sectionID, portionID string) models.Order {
	out := CloneOrder(o)
	sec := sectionByID(&out, sectionID)
	if sec == nil || len(sec.Portions) <= 1 {
		return o
	}

	kept := sec.Portions[:0]
	removed := false
	for _, p := range sec.Portions {
		if p.ID == portionID {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return o
	}
	sec.Portions = kept
	return Recalculate(out)
}

// NewDraftOrder menyiapkan order kosong untuk kategori tersebut, lengkap
// dengan section default dan satu portion kosong per section.
func NewDraftOrder(category models.Category) models.Order {
	order := models.Order{
		Invitation: 1,
		Visitor:    1,
		Event: models.Event{
			Category: category,
			Date:     time.Now().Format("2006-01-02"),
			Time:     "08:00",
		},
	}
	for _, name := range category.DefaultSections() {
		secID := uuid.NewString()
		order.Sections = append(order.Sections, models.Section{
			ID:   secID,
			Name: name,
			Portions: []models.Portion{
				{ID: uuid.NewString(), SectionID: secID},
			},
		})
	}
	return Recalculate(order)
}

// EnsureIdentifiers mengisi id section/portion yang kosong dari payload
// klien dengan UUID baru sebelum disimpan.
func EnsureIdentifiers(o models.Order) models.Order {
	out := CloneOrder(o)
	for i := range out.Sections {
		sec := &out.Sections[i]
		if sec.ID == "" {
			sec.ID = uuid.NewString()
		}
		for j := range sec.Portions {
			p := &sec.Portions[j]
			if p.ID == "" {
				p.ID = uuid.NewString()
			}
			p.SectionID = sec.ID
		}
	}
	return out
}

func sectionByID(o *models.Order, id string) *models.Section {
	for i := range o.Sections {
		if o.Sections[i].ID == id {
			return &o.Sections[i]
		}
	}
	return nil
}

// coerceAmount membaca input angka dari form. Angka bertanda ikut terbaca
// dulu; nilai negatif lalu dipangkas ke 0 oleh Recalculate. Input berformat
// ("1.500.000") atau rusak jatuh ke ParseAmount.
func coerceAmount(raw string) int {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return n
	}
	return utils.ParseAmount(raw)
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
