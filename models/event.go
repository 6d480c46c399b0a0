package models

type Event struct {
	ID      uint `gorm:"primaryKey" json:"-"`
	OrderID uint `gorm:"index" json:"-"`

	Name     string `gorm:"type:varchar(255)" json:"event_name"`
	Location string `gorm:"type:varchar(255)" json:"event_location"`
	// Date disimpan sebagai tanggal ISO (2006-01-02), Time sebagai HH:MM.
	// Keduanya bagian kontrak wire dengan front end, jangan diganti time.Time.
	Date     string   `gorm:"type:varchar(10)" json:"event_date"`
	Building string   `gorm:"type:varchar(255)" json:"event_building"`
	Category Category `gorm:"type:varchar(16);not null" json:"event_category"`
	Time     string   `gorm:"type:varchar(5)" json:"event_time"`
}
