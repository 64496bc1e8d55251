package testsuit

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rlconnector/common/entity"
)

// 测试数据中的订单号与商品ID
const (
	SimpleOrderIncrementID = "000000101"
	BundleOrderIncrementID = "000000102"
	EmptyOrderIncrementID  = "000000103"

	ProductSneaker = int64(100)
	ProductDeleted = int64(200)
	ProductKit     = int64(300)
	ProductBrush   = int64(400) // 不在商品库中
	ProductLaces   = int64(500)

	ModuleName    = "Returnless_Connector"
	ModuleVersion = "1.4.2"
)

// OrderCreatedAt 测试订单的创建时间
var OrderCreatedAt = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func i64(v int64) *int64 { return &v }

// SeedFixtures 写入一组 Magento 风格的订单和商品数据
//
//	000000101 注册客户，两条普通订单行，其中商品 200 已从商品库删除
//	000000102 游客，组合商品 300 带两条子订单行（100、400），以及普通商品 500
//	000000103 没有地址和订单行
func SeedFixtures(t testing.TB, db *gorm.DB) {
	t.Helper()

	orders := []entity.SalesOrder{
		{EntityID: 1, IncrementID: SimpleOrderIncrementID, CustomerID: i64(7), CustomerEmail: "jane@example.com", CreatedAt: OrderCreatedAt, UpdatedAt: OrderCreatedAt},
		{EntityID: 2, IncrementID: BundleOrderIncrementID, CustomerEmail: "guest@example.com", CreatedAt: OrderCreatedAt, UpdatedAt: OrderCreatedAt},
		{EntityID: 3, IncrementID: EmptyOrderIncrementID, CustomerID: i64(8), CustomerEmail: "empty@example.com", CreatedAt: OrderCreatedAt, UpdatedAt: OrderCreatedAt},
	}
	require.NoError(t, db.Create(&orders).Error)

	addresses := []entity.SalesOrderAddress{
		{EntityID: 1, ParentID: 1, AddressType: entity.AddressTypeBilling, Firstname: "Jane", Lastname: "Doe", Postcode: "1012 JS", City: "Amsterdam", CountryID: "NL", Street: "Damrak 1\n2nd floor", Telephone: "+31 20 111 1111"},
		{EntityID: 2, ParentID: 1, AddressType: entity.AddressTypeShipping, Firstname: "John", Lastname: "Doe", Postcode: "1012 PA", City: "Amsterdam", CountryID: "NL", Street: "Kalverstraat 10\nA\nbox 3", Telephone: "+31 20 222 2222"},
		{EntityID: 3, ParentID: 2, AddressType: entity.AddressTypeBilling, Firstname: "Gus", Lastname: "Guest", Postcode: "10115", City: "Berlin", CountryID: "DE", Street: "Invalidenstr. 5", Telephone: "+49 30 333"},
	}
	require.NoError(t, db.Create(&addresses).Error)

	items := []entity.SalesOrderItem{
		{ItemID: 1, OrderID: 1, ProductID: ProductSneaker, ProductType: "simple", SKU: "SNK-001", Name: "Canvas Sneaker (ordered)", QtyOrdered: dec("2"), BasePrice: dec("49.95"), DiscountAmount: dec("5"), PriceInclTax: dec("60.44"), RowTotalInclTax: dec("120.88")},
		{ItemID: 2, OrderID: 1, ProductID: ProductDeleted, ProductType: "simple", SKU: "OLD-200", Name: "Retired Slipper", QtyOrdered: dec("1"), BasePrice: dec("19.5"), DiscountAmount: dec("0"), PriceInclTax: dec("23.6"), RowTotalInclTax: dec("23.6")},

		{ItemID: 3, OrderID: 2, ProductID: ProductKit, ProductType: "bundle", SKU: "KIT-300", Name: "Sneaker Care Kit", QtyOrdered: dec("1"), BasePrice: dec("25"), DiscountAmount: dec("0"), PriceInclTax: dec("30.25"), RowTotalInclTax: dec("30.25")},
		{ItemID: 4, OrderID: 2, ParentItemID: i64(3), ProductID: ProductSneaker, ProductType: "simple", SKU: "SNK-001", Name: "Canvas Sneaker", QtyOrdered: dec("1"), BasePrice: dec("20"), DiscountAmount: dec("0"), PriceInclTax: dec("24.2"), RowTotalInclTax: dec("24.2")},
		{ItemID: 5, OrderID: 2, ParentItemID: i64(3), ProductID: ProductBrush, ProductType: "simple", SKU: "BRS-400", Name: "Suede Brush", QtyOrdered: dec("1"), BasePrice: dec("5"), DiscountAmount: dec("0"), PriceInclTax: dec("6.05"), RowTotalInclTax: dec("6.05")},
		{ItemID: 6, OrderID: 2, ProductID: ProductLaces, ProductType: "simple", SKU: "LAC-500", Name: "Shoe Laces", QtyOrdered: dec("3"), BasePrice: dec("4.5"), DiscountAmount: dec("1.5"), PriceInclTax: dec("5.45"), RowTotalInclTax: dec("14.85")},
	}
	require.NoError(t, db.Create(&items).Error)

	products := []entity.CatalogProduct{
		{EntityID: ProductSneaker, SKU: "SNK-001", Name: "Canvas Sneaker", Price: dec("59.95"), URLKey: "canvas-sneaker", Image: "/c/a/canvas.jpg", Attributes: datatypes.JSON(`{"brand":"Acme","ean":"8712345678906"}`)},
		{EntityID: ProductKit, SKU: "KIT-300", Name: "Sneaker Care Kit", Price: dec("25"), Image: "no_selection", Attributes: datatypes.JSON(`{"brand":"Acme"}`)},
		{EntityID: ProductLaces, SKU: "LAC-500", Name: "Shoe Laces", Price: dec("4.5"), URLKey: "shoe-laces"},
	}
	require.NoError(t, db.Create(&products).Error)

	gallery := []entity.CatalogProductGallery{
		{ValueID: 1, ProductID: ProductSneaker, File: "/c/a/canvas-side.jpg", Position: 2},
		{ValueID: 2, ProductID: ProductSneaker, File: "/c/a/canvas-front.jpg", Position: 1},
		{ValueID: 3, ProductID: ProductSneaker, File: "/c/a/canvas-old.jpg", Position: 0, Disabled: true},
		{ValueID: 4, ProductID: ProductKit, File: "/k/i/kit.jpg", Position: 1},
	}
	require.NoError(t, db.Create(&gallery).Error)

	categories := []entity.CatalogCategoryProduct{
		{CategoryID: 12, ProductID: ProductSneaker, Position: 1},
		{CategoryID: 3, ProductID: ProductSneaker, Position: 0},
		{CategoryID: 12, ProductID: ProductKit, Position: 4},
	}
	require.NoError(t, db.Create(&categories).Error)

	require.NoError(t, db.Create(&entity.SetupModule{Module: ModuleName, SchemaVersion: ModuleVersion, DataVersion: ModuleVersion}).Error)
}
