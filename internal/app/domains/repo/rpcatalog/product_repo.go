package rpcatalog

import (
	"context"

	"rlconnector/internal/app/domains/entity/etcatalog"
)

// ProductRepository 商品仓储接口（只读）
type ProductRepository interface {
	// GetByIDs 批量查询商品，不存在的商品不出现在结果中
	GetByIDs(ctx context.Context, productIDs []int64) (map[int64]*etcatalog.Product, error)
}
