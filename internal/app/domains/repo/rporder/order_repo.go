package rporder

import (
	"context"

	"rlconnector/internal/app/domains/entity/etorder"
)

// OrderRepository 订单仓储接口（只读）
// 实现基于 sales_order / sales_order_address / sales_order_item
type OrderRepository interface {
	// GetByIncrementID 根据订单号精确查询订单（含地址和订单行）
	// 订单不存在时返回 errorx.ErrOrderNotFound
	GetByIncrementID(ctx context.Context, incrementID string) (*etorder.Order, error)
}
