package orderinfo

import (
	"github.com/gin-gonic/gin"

	"rlconnector/internal/app/domains/apimodel/request"
	"rlconnector/internal/app/pkg/errorx"
	"rlconnector/internal/app/pkg/ginx"
)

// Get godoc
// @Summary      获取订单快照
// @Description  根据订单号返回退货系统所需的订单、客户、地址和订单行信息
// @Description
// @Description  HTTP 状态码恒为 200：
// @Description  - return_code=0 查询成功，result 为订单信息
// @Description  - return_code=112 未处理（订单不存在、参数错误、存储错误），return_message 为原因
// @Tags         order-info
// @Produce      json
// @Param        increment_id path string true "订单号（increment_id）"
// @Success      200 {object} response.OrderSnapshot "订单快照"
// @Router       /order-info/{increment_id} [get]
func (h *OrderInfoHandler) Get(c *gin.Context) {
	var req request.OrderInfoRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.reject(c, err)
		return
	}

	ginx.Snapshot(c, h.orderInfoService.Snapshot(c.Request.Context(), req.IncrementID))
}

// GetLegacy 兼容旧版 REST 路径
// GET /rest/V1/returnless/order-info?increment_id=000000101
func (h *OrderInfoHandler) GetLegacy(c *gin.Context) {
	var req request.OrderInfoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.reject(c, err)
		return
	}

	ginx.Snapshot(c, h.orderInfoService.Snapshot(c.Request.Context(), req.IncrementID))
}

func (h *OrderInfoHandler) reject(c *gin.Context, err error) {
	h.Fail(c, errorx.InvalidInput("%s", ginx.ValidationMessage(err)))
}

// Fail 输出带已安装版本号的失败快照，也用于 panic 恢复
func (h *OrderInfoHandler) Fail(c *gin.Context, err error) {
	ginx.Snapshot(c, h.orderInfoService.Reject(c.Request.Context(), err))
}
