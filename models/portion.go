package models

type Portion struct {
	ID        string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	SectionID string `gorm:"index;type:varchar(64)" json:"-"`

	Name string `gorm:"type:varchar(255)" json:"portion_name"`
	Note string `gorm:"type:text" json:"portion_note"`

	// Harga dalam Rupiah bulat, tanpa pecahan.
	Count int `gorm:"not null;default:0" json:"portion_count"`
	Price int `gorm:"not null;default:0" json:"portion_price"`

	// TotalPrice selalu Count * Price, diisi ulang oleh Recalculate.
	TotalPrice int `gorm:"not null;default:0" json:"portion_total_price"`
}
