package models

type Customer struct {
	ID      uint `gorm:"primaryKey" json:"-"`
	OrderID uint `gorm:"index" json:"-"`

	Name  string `gorm:"type:varchar(255)" json:"customer_name"`
	Phone string `gorm:"type:varchar(32)" json:"customer_phone"`
	Email string `gorm:"type:varchar(255)" json:"customer_email"`
}
