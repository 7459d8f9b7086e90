package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 定义错误响应结构
type ErrorResponse struct {
	Code  ErrorCode `json:"code"`
	Error string    `json:"error"`
}

// MessageResponse 定义只带消息的成功响应
type MessageResponse struct {
	Message string `json:"message"`
}

// 错误码与HTTP状态码映射
var errorStatusMap = map[ErrorCode]int{
	// 系统错误 (1000-1999)
	ErrInternal:    http.StatusInternalServerError,
	ErrDatabase:    http.StatusInternalServerError,
	ErrTimeout:     http.StatusGatewayTimeout,
	ErrUnavailable: http.StatusServiceUnavailable,

	// 请求错误 (3000-3999)
	ErrBadRequest:       http.StatusBadRequest,
	ErrValidation:       http.StatusBadRequest,
	ErrResourceNotFound: http.StatusNotFound,
}

// StatusOf 返回错误码对应的HTTP状态码
func StatusOf(code ErrorCode) int {
	if status, ok := errorStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// HandleError 统一处理错误响应。带底层错误时返回底层错误信息
func HandleError(c *gin.Context, err error) {
	appErr := FromService(err)
	_ = c.Error(appErr)

	resp := ErrorResponse{
		Code:  appErr.Code,
		Error: appErr.Message,
	}
	if appErr.Err != nil {
		resp.Error = appErr.Err.Error()
	}

	c.JSON(StatusOf(appErr.Code), resp)
}

// HandleMessage 返回只带消息的成功响应
func HandleMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}
