package middlewares

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"rlconnector/internal/app/domains/apimodel/response"
	"rlconnector/internal/app/pkg/errorx"
	"rlconnector/internal/app/pkg/ginx"
	"rlconnector/internal/app/pkg/logger"
)

// RenderFailure 输出失败快照
type RenderFailure func(c *gin.Context, err error)

// Recovery 捕获 panic，记录堆栈并通过 render 返回 return_code=112 的快照
// render 为 nil 时输出不带版本号的快照
func Recovery(log logger.Logger, render RenderFailure) gin.HandlerFunc {
	if render == nil {
		render = func(c *gin.Context, err error) {
			ginx.Snapshot(c, response.NewOrderSnapshot("").Fail(err))
		}
	}

	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf(c.Request.Context(), "[PANIC] %v\n%s", recovered, debug.Stack())

		render(c, errorx.Wrap(errorx.KindInternal, fmt.Errorf("panic: %v", recovered), "internal error"))
		c.Abort()
	})
}
