package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CatalogProduct 商品实体（扁平化的 catalog_product）
type CatalogProduct struct {
	EntityID int64           `gorm:"column:entity_id;primaryKey;autoIncrement"`
	SKU      string          `gorm:"column:sku;type:varchar(64);not null"`
	Name     string          `gorm:"column:name;type:varchar(255)"`
	Price    decimal.Decimal `gorm:"column:price;type:decimal(20,4)"`
	URLKey   string          `gorm:"column:url_key;type:varchar(255)"`
	Image    string          `gorm:"column:image;type:varchar(255)"`

	// Attributes 自定义属性（brand、EAN 等），按属性编码存储
	Attributes datatypes.JSON `gorm:"column:attributes;type:json"`
}

// TableName 指定表名
func (CatalogProduct) TableName() string {
	return "catalog_product"
}

// CatalogProductGallery 商品图库实体
type CatalogProductGallery struct {
	ValueID   int64  `gorm:"column:value_id;primaryKey;autoIncrement"`
	ProductID int64  `gorm:"column:product_id;not null;index:idx_product_position"`
	File      string `gorm:"column:file;type:varchar(255);not null"`
	Position  int    `gorm:"column:position;index:idx_product_position"`
	Disabled  bool   `gorm:"column:disabled;not null;default:false"`
}

// TableName 指定表名
func (CatalogProductGallery) TableName() string {
	return "catalog_product_gallery"
}

// CatalogCategoryProduct 商品分类关联
type CatalogCategoryProduct struct {
	CategoryID int64 `gorm:"column:category_id;primaryKey"`
	ProductID  int64 `gorm:"column:product_id;primaryKey;index:idx_product_id"`
	Position   int   `gorm:"column:position"`
}

// TableName 指定表名
func (CatalogCategoryProduct) TableName() string {
	return "catalog_category_product"
}
