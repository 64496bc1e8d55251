package mdorder

import (
	"context"

	"rlconnector/internal/app/domains/entity/etorder"
	"rlconnector/internal/app/domains/repo/rpmodule"
	"rlconnector/internal/app/domains/repo/rporder"
)

// OrderModule 订单模块（业务编排层）
type OrderModule struct {
	orderRepo  rporder.OrderRepository
	moduleRepo rpmodule.ModuleRepository
	moduleName string
}

// NewOrderModule 创建订单模块
func NewOrderModule(
	orderRepo rporder.OrderRepository,
	moduleRepo rpmodule.ModuleRepository,
	moduleName string,
) *OrderModule {
	return &OrderModule{
		orderRepo:  orderRepo,
		moduleRepo: moduleRepo,
		moduleName: moduleName,
	}
}

// GetOrderByIncrementID 根据订单号查询订单
func (m *OrderModule) GetOrderByIncrementID(ctx context.Context, incrementID string) (*etorder.Order, error) {
	return m.orderRepo.GetByIncrementID(ctx, incrementID)
}

// InstalledModuleVersion 连接器模块的安装版本
func (m *OrderModule) InstalledModuleVersion(ctx context.Context) (string, error) {
	return m.moduleRepo.InstalledVersion(ctx, m.moduleName)
}
