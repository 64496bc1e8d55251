package etcatalog

import "github.com/shopspring/decimal"

// NoSelection 商品未设置主图时的占位值
const NoSelection = "no_selection"

// AttributeBrand 品牌属性编码
const AttributeBrand = "brand"

// Product 商品（领域对象，只读）
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Price       decimal.Decimal
	URLKey      string
	Image       string                 // 主图文件，如 /a/b/ab.jpg
	Attributes  map[string]interface{} // 自定义属性
	Gallery     []*GalleryImage        // 已启用的图库图片，按 position 升序
	CategoryIDs []string
}

// GalleryImage 图库图片
type GalleryImage struct {
	File     string
	Position int
}

// HasImage 是否设置了主图
func (p *Product) HasImage() bool {
	return p.Image != "" && p.Image != NoSelection
}

// Attribute 按属性编码读取商品数据，先查自定义属性，再查 sku/name/price/url_key/image 等标准字段
// 未设置时返回 nil
func (p *Product) Attribute(code string) interface{} {
	if code == "" {
		return nil
	}
	if value, ok := p.Attributes[code]; ok {
		return value
	}
	return p.standardAttribute(code)
}

func (p *Product) standardAttribute(code string) interface{} {
	var value string
	switch code {
	case "sku":
		value = p.SKU
	case "name":
		value = p.Name
	case "price":
		value = p.Price.StringFixed(4)
	case "url_key":
		value = p.URLKey
	case "image":
		value = p.Image
	}
	if value == "" {
		return nil
	}
	return value
}

// Brand 品牌
func (p *Product) Brand() interface{} {
	return p.Attribute(AttributeBrand)
}

// FirstGalleryImage 第一张图库图片
func (p *Product) FirstGalleryImage() *GalleryImage {
	if len(p.Gallery) == 0 {
		return nil
	}
	return p.Gallery[0]
}
