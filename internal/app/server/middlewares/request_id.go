package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rlconnector/internal/app/pkg/logger"
)

// HeaderRequestID 请求ID头
const HeaderRequestID = "X-Request-ID"

// RequestID 读取或生成请求ID，写入响应头和请求 context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Writer.Header().Set(HeaderRequestID, rid)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), rid))

		c.Next()
	}
}
