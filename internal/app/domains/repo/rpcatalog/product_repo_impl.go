package rpcatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"rlconnector/common/entity"
	"rlconnector/internal/app/domains/entity/etcatalog"

	"gorm.io/gorm"
)

// ProductRepositoryImpl 商品仓储实现（MySQL）
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储实例
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// GetByIDs 批量查询商品及其图库、分类
func (r *ProductRepositoryImpl) GetByIDs(ctx context.Context, productIDs []int64) (map[int64]*etcatalog.Product, error) {
	result := make(map[int64]*etcatalog.Product, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	var pos []entity.CatalogProduct
	if err := r.db.WithContext(ctx).Where("entity_id IN ?", productIDs).Find(&pos).Error; err != nil {
		return nil, fmt.Errorf("query catalog_product failed: %w", err)
	}
	if len(pos) == 0 {
		return result, nil
	}

	found := make([]int64, 0, len(pos))
	for i := range pos {
		product, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, err
		}
		result[product.ID] = product
		found = append(found, product.ID)
	}

	var gallery []entity.CatalogProductGallery
	if err := r.db.WithContext(ctx).
		Where("product_id IN ? AND disabled = ?", found, false).
		Order("position ASC, value_id ASC").
		Find(&gallery).Error; err != nil {
		return nil, fmt.Errorf("query catalog_product_gallery failed: %w", err)
	}
	for _, g := range gallery {
		p := result[g.ProductID]
		p.Gallery = append(p.Gallery, &etcatalog.GalleryImage{File: g.File, Position: g.Position})
	}

	var links []entity.CatalogCategoryProduct
	if err := r.db.WithContext(ctx).
		Where("product_id IN ?", found).
		Order("category_id ASC").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("query catalog_category_product failed: %w", err)
	}
	for _, link := range links {
		p := result[link.ProductID]
		p.CategoryIDs = append(p.CategoryIDs, strconv.FormatInt(link.CategoryID, 10))
	}

	return result, nil
}

// toDomainModel GORM 模型转换为领域对象
func (r *ProductRepositoryImpl) toDomainModel(po *entity.CatalogProduct) (*etcatalog.Product, error) {
	product := &etcatalog.Product{
		ID:          po.EntityID,
		SKU:         po.SKU,
		Name:        po.Name,
		Price:       po.Price,
		URLKey:      po.URLKey,
		Image:       po.Image,
		CategoryIDs: []string{},
	}

	if len(po.Attributes) > 0 && string(po.Attributes) != "null" {
		if err := json.Unmarshal(po.Attributes, &product.Attributes); err != nil {
			return nil, fmt.Errorf("decode attributes of product_id=%d failed: %w", po.EntityID, err)
		}
	}

	return product, nil
}
