package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Prices are stored as exact
// decimals; stock can never go negative at the database level either.
type ProductModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	Name          string          `gorm:"type:varchar(200);not null;index"`
	CategoryID    int64           `gorm:"not null;index"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	StockQuantity int64           `gorm:"not null;default:0;check:stock_quantity >= 0"`
	ReorderLevel  int64           `gorm:"not null;default:0"`
	IsActive      bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
