package orderinfo

import "rlconnector/internal/app/domains/services/svorderinfo"

// OrderInfoHandler 订单快照 HTTP 处理器
type OrderInfoHandler struct {
	orderInfoService *svorderinfo.OrderInfoService
}

// NewOrderInfoHandler 创建订单快照处理器实例
func NewOrderInfoHandler(orderInfoService *svorderinfo.OrderInfoService) *OrderInfoHandler {
	return &OrderInfoHandler{
		orderInfoService: orderInfoService,
	}
}
