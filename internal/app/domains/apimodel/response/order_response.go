package response

// OrderSnapshot 订单快照响应（对外协议）
type OrderSnapshot struct {
	ReturnCode             int        `json:"return_code" example:"0"`
	ReturnMessage          string     `json:"return_message" example:""`
	InstalledModuleVersion string     `json:"installed_module_version" example:"1.4.2"`
	Result                 *OrderInfo `json:"result,omitempty"`
}

// OrderInfo 订单信息（DTO）
type OrderInfo struct {
	ID              string                    `json:"id" example:"000000101"`
	OrderID         int64                     `json:"order_id" example:"1"`
	CreateAt        DateValue                 `json:"create_at"`
	Customer        Customer                  `json:"customer"`
	BillingAddress  *Address                  `json:"billing_address,omitempty"`
	ShippingAddress *Address                  `json:"shipping_address,omitempty"`
	OrderProducts   Positional[*OrderProduct] `json:"order_products,omitempty"`
}

// DateValue 时间值
type DateValue struct {
	Value string `json:"value" example:"2024-03-05 14:07:09"`
}

// Customer 客户信息，游客下单时 id 为 null
type Customer struct {
	ID    *int64  `json:"id"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// Address 地址（DTO）
type Address struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Postcode  string  `json:"postcode"`
	City      string  `json:"city"`
	Country   Country `json:"country"`
	Address1  string  `json:"address1"`
	Address2  string  `json:"address2"`
	Addition  string  `json:"addition"`
}

// Country 国家
type Country struct {
	Code2 string `json:"code2" example:"NL"`
}

// LineFields 订单行字段（顶层订单行与子订单行共用）
type LineFields struct {
	ProductID      int64  `json:"product_id"`
	Quantity       Amount `json:"quantity"`
	OrderProductID int64  `json:"order_product_id"`
	Price          Amount `json:"price"`
	DiscountAmount Amount `json:"discount_amount"`
	PriceIncTax    Amount `json:"price_inc_tax"`
	TotalAmount    Amount `json:"total_amount"`
	Model          string `json:"model"`
}

// OrderProduct 顶层订单行
type OrderProduct struct {
	LineFields
	ItemType string `json:"item_type"`
	*BundleInfo
	Name string `json:"name"`
	*CatalogInfo
}

// BundleInfo 拆分展示的组合商品
type BundleInfo struct {
	IsBundle       bool                     `json:"is_bundle"`
	BundleItemID   int64                    `json:"bundle_item_id"`
	IsSeparated    int                      `json:"is_separated"`
	BundleChildren Positional[*BundleChild] `json:"bundle_children,omitempty"`
}

// BundleChild 组合商品的子订单行
type BundleChild struct {
	LineFields
	Name string `json:"name"`
	*CatalogInfo
}

// CatalogInfo 商品库字段，商品已删除时整体缺省
type CatalogInfo struct {
	Cost          Amount      `json:"cost"`
	Images        []Image     `json:"images"`
	URL           string      `json:"url"`
	CategoriesIDs []string    `json:"categories_ids"`
	Brand         interface{} `json:"u_brand"`
	UPC           interface{} `json:"u_upc"`
}

// Image 图片
type Image struct {
	HTTPPath *string `json:"http_path"`
}
