package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrder 订单实体（sales_order）
type SalesOrder struct {
	EntityID      int64     `gorm:"column:entity_id;primaryKey;autoIncrement"`
	IncrementID   string    `gorm:"column:increment_id;type:varchar(50);uniqueIndex:uk_increment_id;not null"`
	CustomerID    *int64    `gorm:"column:customer_id"`
	CustomerEmail string    `gorm:"column:customer_email;type:varchar(128)"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (SalesOrder) TableName() string {
	return "sales_order"
}

// SalesOrderAddress 订单地址实体（sales_order_address）
type SalesOrderAddress struct {
	EntityID    int64  `gorm:"column:entity_id;primaryKey;autoIncrement"`
	ParentID    int64  `gorm:"column:parent_id;not null;index:idx_parent_type"`
	AddressType string `gorm:"column:address_type;type:varchar(16);not null;index:idx_parent_type"`
	Firstname   string `gorm:"column:firstname;type:varchar(255)"`
	Lastname    string `gorm:"column:lastname;type:varchar(255)"`
	Postcode    string `gorm:"column:postcode;type:varchar(255)"`
	City        string `gorm:"column:city;type:varchar(255)"`
	CountryID   string `gorm:"column:country_id;type:varchar(2)"`
	// Street 多行街道，以换行符分隔
	Street    string `gorm:"column:street;type:varchar(255)"`
	Telephone string `gorm:"column:telephone;type:varchar(255)"`
}

// TableName 指定表名
func (SalesOrderAddress) TableName() string {
	return "sales_order_address"
}

// 地址类型常量
const (
	AddressTypeBilling  = "billing"
	AddressTypeShipping = "shipping"
)

// SalesOrderItem 订单行实体（sales_order_item）
type SalesOrderItem struct {
	ItemID          int64           `gorm:"column:item_id;primaryKey;autoIncrement"`
	OrderID         int64           `gorm:"column:order_id;not null;index:idx_order_id"`
	ParentItemID    *int64          `gorm:"column:parent_item_id"`
	ProductID       int64           `gorm:"column:product_id"`
	ProductType     string          `gorm:"column:product_type;type:varchar(255)"`
	SKU             string          `gorm:"column:sku;type:varchar(255)"`
	Name            string          `gorm:"column:name;type:varchar(255)"`
	QtyOrdered      decimal.Decimal `gorm:"column:qty_ordered;type:decimal(12,4)"`
	BasePrice       decimal.Decimal `gorm:"column:base_price;type:decimal(20,4)"`
	DiscountAmount  decimal.Decimal `gorm:"column:discount_amount;type:decimal(20,4)"`
	PriceInclTax    decimal.Decimal `gorm:"column:price_incl_tax;type:decimal(20,4)"`
	RowTotalInclTax decimal.Decimal `gorm:"column:row_total_incl_tax;type:decimal(20,4)"`
}

// TableName 指定表名
func (SalesOrderItem) TableName() string {
	return "sales_order_item"
}
