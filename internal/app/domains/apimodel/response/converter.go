package response

import (
	"rlconnector/internal/app/domains/entity/etcatalog"
	"rlconnector/internal/app/domains/entity/etorder"
	"rlconnector/internal/app/pkg/errorx"
)

// DateTimeLayout 订单时间格式
const DateTimeLayout = "2006-01-02 15:04:05"

// NewOrderSnapshot 创建未处理状态的快照（return_code=112）
func NewOrderSnapshot(installedVersion string) *OrderSnapshot {
	return &OrderSnapshot{
		ReturnCode:             errorx.ReturnCodeNotProcessed,
		InstalledModuleVersion: installedVersion,
	}
}

// Succeed 填充结果
func (s *OrderSnapshot) Succeed(info *OrderInfo) *OrderSnapshot {
	s.ReturnCode = errorx.ReturnCodeOK
	s.ReturnMessage = ""
	s.Result = info
	return s
}

// Fail 记录错误信息，不返回任何部分结果
func (s *OrderSnapshot) Fail(err error) *OrderSnapshot {
	s.ReturnCode = errorx.ReturnCodeNotProcessed
	s.ReturnMessage = err.Error()
	s.Result = nil
	return s
}

// FromOrderEntity 订单基础信息、客户和地址
func FromOrderEntity(order *etorder.Order) *OrderInfo {
	info := &OrderInfo{
		ID:       order.IncrementID,
		OrderID:  order.EntityID,
		CreateAt: DateValue{Value: order.CreatedAt.Format(DateTimeLayout)},
		Customer: Customer{
			ID:    order.CustomerID,
			Email: order.CustomerEmail,
		},
	}

	// 先账单地址后收货地址，电话以最后读取的地址为准
	if order.BillingAddress != nil {
		info.BillingAddress = fromAddressEntity(order.BillingAddress)
		phone := order.BillingAddress.Telephone
		info.Customer.Phone = &phone
	}
	if order.ShippingAddress != nil {
		info.ShippingAddress = fromAddressEntity(order.ShippingAddress)
		phone := order.ShippingAddress.Telephone
		info.Customer.Phone = &phone
	}

	return info
}

func fromAddressEntity(a *etorder.Address) *Address {
	return &Address{
		FirstName: a.Firstname,
		LastName:  a.Lastname,
		Postcode:  a.Postcode,
		City:      a.City,
		Country:   Country{Code2: a.CountryID},
		Address1:  a.StreetLine(0),
		Address2:  a.StreetLine(1),
		Addition:  a.StreetLine(2),
	}
}

// FromItemEntity 订单行字段
func FromItemEntity(item *etorder.Item) LineFields {
	return LineFields{
		ProductID:      item.ProductID,
		Quantity:       NewAmount(item.QtyOrdered),
		OrderProductID: item.ItemID,
		Price:          NewAmount(item.BasePrice),
		DiscountAmount: NewAmount(item.DiscountAmount),
		PriceIncTax:    NewAmount(item.PriceInclTax),
		TotalAmount:    NewAmount(item.RowTotalInclTax),
		Model:          item.SKU,
	}
}

// NewSeparatedBundle 拆分展示的组合商品标记
func NewSeparatedBundle(item *etorder.Item) *BundleInfo {
	return &BundleInfo{
		IsBundle:     true,
		BundleItemID: item.ItemID,
		IsSeparated:  1,
	}
}

// CatalogLinks 商品图片与链接（由调用方解析）
type CatalogLinks struct {
	LargeImage   string
	GalleryImage *string
	URL          string
}

// FromProductEntity 商品库字段，upc 为 nil 时输出 null
func FromProductEntity(p *etcatalog.Product, links CatalogLinks, upc interface{}) *CatalogInfo {
	large := links.LargeImage
	categories := p.CategoryIDs
	if categories == nil {
		categories = []string{}
	}
	return &CatalogInfo{
		Cost:          NewAmount(p.Price),
		Images:        []Image{{HTTPPath: &large}, {HTTPPath: links.GalleryImage}},
		URL:           links.URL,
		CategoriesIDs: categories,
		Brand:         p.Brand(),
		UPC:           upc,
	}
}
