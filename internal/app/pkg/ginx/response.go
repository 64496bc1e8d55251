package ginx

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"rlconnector/internal/app/domains/apimodel/response"
)

// ContentTypeJSON 快照响应的 Content-Type
const ContentTypeJSON = "application/json; charset=utf-8"

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"rlconnector"`
}

// Snapshot 输出订单快照
// HTTP 状态码恒为 200，处理结果由 return_code 表达
func Snapshot(c *gin.Context, snapshot *response.OrderSnapshot) {
	c.Header("Content-Type", ContentTypeJSON)
	c.JSON(http.StatusOK, snapshot)
}

// Health 健康检查响应（200/503）
func Health(c *gin.Context, httpCode int, status, service string) {
	c.JSON(httpCode, HealthResponse{Status: status, Service: service})
}

// UseParamTagNames 校验错误中的字段名使用 uri/form/json 标签名，而非结构体字段名
func UseParamTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"uri", "form", "json"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
}

// ValidationMessage 将绑定错误转换为一行可读的错误消息
func ValidationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			messages = append(messages, getValidationErrorMessage(fieldErr))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

// getValidationErrorMessage 根据验证错误类型返回友好的错误消息
func getValidationErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters"
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param() + " characters"
	default:
		return fieldErr.Field() + " is invalid"
	}
}
