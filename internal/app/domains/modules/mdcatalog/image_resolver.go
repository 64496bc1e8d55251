package mdcatalog

import (
	"strconv"
	"strings"

	"rlconnector/internal/app/domains/entity/etcatalog"
)

const productMediaPath = "catalog/product"

// URLConfig 店铺地址配置
type URLConfig struct {
	BaseURL          string
	MediaURL         string
	ProductURLSuffix string
	PlaceholderImage string
}

// ImageResolver 商品图片与链接解析
type ImageResolver struct {
	baseURL     string
	mediaURL    string
	suffix      string
	placeholder string
}

// NewImageResolver 创建解析器
func NewImageResolver(cfg URLConfig) *ImageResolver {
	return &ImageResolver{
		baseURL:     withTrailingSlash(cfg.BaseURL),
		mediaURL:    withTrailingSlash(cfg.MediaURL),
		suffix:      cfg.ProductURLSuffix,
		placeholder: cfg.PlaceholderImage,
	}
}

// LargeProductImageURL 商品详情页大图，未设置主图时返回占位图
func (r *ImageResolver) LargeProductImageURL(p *etcatalog.Product) string {
	if !p.HasImage() {
		return r.placeholder
	}
	return r.mediaFileURL(p.Image)
}

// FirstGalleryImageURL 图库第一张图片，图库为空时返回 nil
func (r *ImageResolver) FirstGalleryImageURL(p *etcatalog.Product) *string {
	first := p.FirstGalleryImage()
	if first == nil {
		return nil
	}
	url := r.mediaFileURL(first.File)
	return &url
}

// ProductURL 商品前台链接，没有 url_key 时使用 catalog/product/view/id/<id>
func (r *ImageResolver) ProductURL(p *etcatalog.Product) string {
	if p.URLKey == "" {
		return r.baseURL + "catalog/product/view/id/" + strconv.FormatInt(p.ID, 10) + "/"
	}
	return r.baseURL + p.URLKey + r.suffix
}

func (r *ImageResolver) mediaFileURL(file string) string {
	return r.mediaURL + productMediaPath + "/" + strings.TrimPrefix(file, "/")
}

func withTrailingSlash(url string) string {
	if url == "" || strings.HasSuffix(url, "/") {
		return url
	}
	return url + "/"
}
