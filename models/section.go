package models

type Section struct {
	ID      string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	OrderID uint   `gorm:"index" json:"-"`

	Name string `gorm:"type:varchar(64);not null" json:"section_name"`
	Note string `gorm:"type:text" json:"section_note"`

	// Price adalah field lama dari klien; dibawa apa adanya supaya payload
	// round-trip utuh. Jangan dipakai untuk perhitungan.
	Price int `gorm:"not null;default:0" json:"section_price"`

	// Portion dan TotalPrice diturunkan dari portions.
	Portion    int `gorm:"not null;default:0" json:"section_portion"`
	TotalPrice int `gorm:"not null;default:0" json:"section_total_price"`

	Portions []Portion `gorm:"foreignKey:SectionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"portions"`
}
