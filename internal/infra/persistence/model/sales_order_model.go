package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrderModel mirrors the 'sales_orders' table. TotalAmount is the
// stored sum of the line subtotals, written in the same transaction as
// the lines themselves.
type SalesOrderModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderNumber string          `gorm:"type:varchar(50);not null;unique"`
	CustomerID  int64           `gorm:"not null;index"`
	OrderDate   time.Time       `gorm:"not null;index"`
	Status      string          `gorm:"type:varchar(20);not null;default:'Pending'"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Customer *CustomerModel         `gorm:"foreignKey:CustomerID"`
	Details  []SalesOrderLineModel  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SalesOrderModel) TableName() string {
	return "sales_orders"
}

// SalesOrderLineModel mirrors the 'sales_order_details' table. UnitPrice is
// a snapshot of the product price at order time.
type SalesOrderLineModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null;index"`
	Quantity  int64           `gorm:"not null;check:quantity > 0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(18,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (SalesOrderLineModel) TableName() string {
	return "sales_order_details"
}
