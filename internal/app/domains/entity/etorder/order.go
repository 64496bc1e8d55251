package etorder

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductTypeBundle 组合商品类型
const ProductTypeBundle = "bundle"

// Order 订单聚合根（领域对象，只读）
type Order struct {
	EntityID        int64     // 内部订单ID
	IncrementID     string    // 订单号（对外展示）
	CustomerID      *int64    // 游客下单时为空
	CustomerEmail   string    // 客户邮箱
	CreatedAt       time.Time // 创建时间
	BillingAddress  *Address  // 账单地址
	ShippingAddress *Address  // 收货地址
	Items           []*Item   // 全部订单行，按 item_id 升序
}

// Address 地址（值对象）
type Address struct {
	Firstname string
	Lastname  string
	Postcode  string
	City      string
	CountryID string
	Street    []string // 街道行，按位置映射
	Telephone string
}

// StreetLine 返回第 i 行街道，不存在时返回空串
func (a *Address) StreetLine(i int) string {
	if i < 0 || i >= len(a.Street) {
		return ""
	}
	return a.Street[i]
}

// Item 订单行
type Item struct {
	ItemID          int64
	ParentItemID    *int64
	ProductID       int64
	ProductType     string
	SKU             string
	Name            string
	QtyOrdered      decimal.Decimal
	BasePrice       decimal.Decimal
	DiscountAmount  decimal.Decimal
	PriceInclTax    decimal.Decimal
	RowTotalInclTax decimal.Decimal
	Children        []*Item // 子订单行（组合商品），按 item_id 升序
}

// HasParent 是否为子订单行
func (i *Item) HasParent() bool {
	return i.ParentItemID != nil && *i.ParentItemID != 0
}

// IsBundle 是否为组合商品
func (i *Item) IsBundle() bool {
	return i.ProductType == ProductTypeBundle
}

// AllItems 全部订单行（包含子订单行）
func (o *Order) AllItems() []*Item {
	return o.Items
}

// VisibleItems 对客户可见的订单行（不含子订单行）
func (o *Order) VisibleItems() []*Item {
	visible := make([]*Item, 0, len(o.Items))
	for _, item := range o.Items {
		if !item.HasParent() {
			visible = append(visible, item)
		}
	}
	return visible
}

// AttachChildren 按 parent_item_id 把子订单行挂到父订单行上
func (o *Order) AttachChildren() {
	byID := make(map[int64]*Item, len(o.Items))
	for _, item := range o.Items {
		item.Children = nil
		byID[item.ItemID] = item
	}
	for _, item := range o.Items {
		if !item.HasParent() {
			continue
		}
		if parent, ok := byID[*item.ParentItemID]; ok {
			parent.Children = append(parent.Children, item)
		}
	}
}
