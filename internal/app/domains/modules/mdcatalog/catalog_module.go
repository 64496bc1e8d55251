package mdcatalog

import (
	"context"

	"rlconnector/internal/app/domains/entity/etcatalog"
	"rlconnector/internal/app/domains/repo/rpcatalog"
)

// CatalogModule 商品模块（业务编排层）
type CatalogModule struct {
	productRepo rpcatalog.ProductRepository
	images      *ImageResolver
}

// NewCatalogModule 创建商品模块
func NewCatalogModule(productRepo rpcatalog.ProductRepository, images *ImageResolver) *CatalogModule {
	return &CatalogModule{
		productRepo: productRepo,
		images:      images,
	}
}

// LoadProducts 按ID去重后批量加载商品，已删除的商品不出现在结果中
func (m *CatalogModule) LoadProducts(ctx context.Context, productIDs []int64) (map[int64]*etcatalog.Product, error) {
	seen := make(map[int64]struct{}, len(productIDs))
	unique := make([]int64, 0, len(productIDs))
	for _, id := range productIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return m.productRepo.GetByIDs(ctx, unique)
}

// Images 图片与链接解析器
func (m *CatalogModule) Images() *ImageResolver {
	return m.images
}
