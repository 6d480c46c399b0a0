package models

import (
	"time"
)

// Category membedakan jenis pesanan. Wedding membawa aturan porsi tambahan
// dan section lengkap, Ricebox hanya Menu Pondokan.
type Category string

const (
	CategoryWedding Category = "Wedding"
	CategoryRicebox Category = "Ricebox"
)

// Nama section baku. Urutan di CanonicalSectionOrder juga menjadi urutan
// cetak pada semua dokumen, apa pun urutan sections di record.
const (
	SectionBuffet       = "Buffet"
	SectionMenuPondokan = "Menu Pondokan"
	SectionDessert      = "Dessert"
	SectionAkad         = "Akad"
)

var CanonicalSectionOrder = []string{
	SectionBuffet,
	SectionMenuPondokan,
	SectionDessert,
	SectionAkad,
}

// DefaultSections mengembalikan daftar nama section untuk kategori tersebut.
func (c Category) DefaultSections() []string {
	if c == CategoryRicebox {
		return []string{SectionMenuPondokan}
	}
	return CanonicalSectionOrder
}

// Valid -> kategori dikenal atau tidak.
func (c Category) Valid() bool {
	return c == CategoryWedding || c == CategoryRicebox
}

type Order struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	UniqueID string `gorm:"type:varchar(36);uniqueIndex;not null" json:"unique_id"`

	EventName string `gorm:"type:varchar(255)" json:"event_name"`
	Note      string `gorm:"type:text" json:"note"`

	// Invitation dan AdditionalGuests adalah input; Visitor diturunkan
	// (invitation*2 + additional_guests) untuk Wedding. Ricebox memakai
	// default 1/1 dan tidak pernah mengubahnya.
	Invitation       int `gorm:"not null;default:1" json:"invitation"`
	AdditionalGuests int `gorm:"not null;default:0" json:"additional_guests"`
	Visitor          int `gorm:"not null;default:1" json:"visitor"`

	// Price dan Portion selalu hasil Recalculate, tidak pernah di-set lepas.
	Price   int `gorm:"not null;default:0" json:"price"`
	Portion int `gorm:"not null;default:0" json:"portion"`

	Customer Customer  `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer"`
	Event    Event     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"event"`
	Sections []Section `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"sections"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
	CreatedBy string    `gorm:"type:varchar(255)" json:"created_by"`
	UpdatedBy string    `gorm:"type:varchar(255)" json:"updated_by"`
}

// SectionByName mencari section berdasarkan nama bakunya.
// nil kalau tidak ada di order (bukan error, dihitung 0 porsi).
func (o *Order) SectionByName(name string) *Section {
	for i := range o.Sections {
		if o.Sections[i].Name == name {
			return &o.Sections[i]
		}
	}
	return nil
}

// PortionCountOf -> total porsi section bernama name, 0 kalau absen.
func (o *Order) PortionCountOf(name string) int {
	if s := o.SectionByName(name); s != nil {
		return s.Portion
	}
	return 0
}
