package errorx

import (
	"errors"
	"fmt"
)

// 定义业务错误
var (
	ErrOrderNotFound = errors.New("order not found")
)

// Kind 错误分类
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindStorage      Kind = "storage"
	KindInternal     Kind = "internal"
)

// 返回码（对外协议）
const (
	ReturnCodeOK           = 0
	ReturnCodeNotProcessed = 112
)

// Error 业务错误结构
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error 实现 error 接口
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New 创建业务错误
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap 包装底层错误，message 为空时沿用底层错误信息
func Wrap(kind Kind, err error, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// InvalidInput 参数错误
func InvalidInput(format string, args ...interface{}) *Error {
	return New(KindInvalidInput, fmt.Sprintf(format, args...))
}

// NotFound 资源不存在
func NotFound(err error, format string, args ...interface{}) *Error {
	return Wrap(KindNotFound, err, fmt.Sprintf(format, args...))
}

// Storage 存储层错误
func Storage(err error, format string, args ...interface{}) *Error {
	return Wrap(KindStorage, err, fmt.Sprintf(format, args...))
}

// As 提取业务错误
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf 对任意错误归类，未识别的错误归为 internal
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if e, ok := As(err); ok {
		return e.Kind
	}
	if errors.Is(err, ErrOrderNotFound) {
		return KindNotFound
	}
	return KindInternal
}
