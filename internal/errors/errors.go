package errors

import (
	stderrors "errors"
	"fmt"

	svcerrors "github.com/emeka-osuagwu/user-post-ui/internal/service/errors"
)

// ErrorCode 定义错误码类型
type ErrorCode int

// 定义系统级错误码 (1000-1999)
const (
	ErrInternal ErrorCode = 1000 + iota
	ErrDatabase
	ErrTimeout
	ErrUnavailable
)

// 定义请求相关错误码 (3000-3999)
const (
	ErrBadRequest ErrorCode = 3000 + iota
	ErrValidation
	ErrResourceNotFound
)

// AppError 定义应用错误结构
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装已有错误
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// FromService 将服务层错误转换为应用错误
func FromService(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var se *svcerrors.ServiceError
	if !stderrors.As(err, &se) {
		return Wrap(ErrInternal, "Internal Server Error", err)
	}

	switch se.Code {
	case svcerrors.ErrNotFound:
		return New(ErrResourceNotFound, se.Message)
	case svcerrors.ErrInvalidInput:
		return Wrap(ErrValidation, se.Message, se.Err)
	case svcerrors.ErrDatabase:
		return Wrap(ErrDatabase, se.Message, se.Err)
	default:
		return Wrap(ErrInternal, se.Message, se.Err)
	}
}
