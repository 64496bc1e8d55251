package request

// OrderInfoRequest 订单快照请求（DTO）
// 新路由从路径参数绑定，兼容路由从查询参数绑定
type OrderInfoRequest struct {
	IncrementID string `uri:"increment_id" form:"increment_id" binding:"required,max=50" example:"000000101"`
}
