package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"

	"rlconnector/internal/app/pkg/ginx"
	"rlconnector/internal/app/pkg/logger"
	"rlconnector/internal/app/server/handlers/orderinfo"
	"rlconnector/internal/app/server/middlewares"
)

// Options 路由依赖
type Options struct {
	ServiceName string
	Logger      logger.Logger
	// Ready 为 false 时 /health 返回 503，用于停机排空
	Ready *atomic.Bool
	// Metrics 为 nil 时不注册 /metrics
	Metrics http.Handler
}

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(orderInfoHandler *orderinfo.OrderInfoHandler, opts Options) *gin.Engine {
	ginx.UseParamTagNames()

	r := gin.New()

	r.Use(middlewares.RequestID())
	r.Use(middlewares.Logger(opts.Logger))
	r.Use(middlewares.Recovery(opts.Logger, orderInfoHandler.Fail))

	r.GET("/health", func(c *gin.Context) {
		if opts.Ready != nil && !opts.Ready.Load() {
			ginx.Health(c, http.StatusServiceUnavailable, "draining", opts.ServiceName)
			return
		}
		ginx.Health(c, http.StatusOK, "ok", opts.ServiceName)
	})

	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	v1 := r.Group("/api/v1")
	{
		v1.GET("/order-info/:increment_id", orderInfoHandler.Get)
	}

	// 兼容 Magento REST 路径
	r.GET("/rest/V1/returnless/order-info", orderInfoHandler.GetLegacy)

	return r
}
