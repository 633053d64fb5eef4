package model

import (
	"time"
)

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(200);not null"`
	Email     string `gorm:"type:varchar(100);index"`
	Phone     string `gorm:"type:varchar(20)"`
	Address   string `gorm:"type:varchar(500)"`
	City      string `gorm:"type:varchar(100)"`
	Country   string `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Orders []SalesOrderModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
