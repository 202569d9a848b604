package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/libreria/bookshop/pkg/errors"
	"github.com/libreria/bookshop/pkg/pagination"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，成功时返回，失败时为null
// 4. Violations仅在参数校验失败时填充（字段级错误明细）
type Response struct {
	Code       int                        `json:"code"`
	Message    string                     `json:"message"`
	Data       interface{}                `json:"data,omitempty"`
	Violations []apperrors.FieldViolation `json:"violations,omitempty"`
}

// Success 成功响应（Code=0表示成功）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessMessage 只返回提示文案的成功响应（如"Like added"）
func SuccessMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithPage 分页成功响应（携带页码链接窗口）
func SuccessWithPage(c *gin.Context, info *pagination.PageInfo) {
	Success(c, info)
}

// Error 错误响应（自动处理AppError）
// 不同的失败类别映射到不同的HTTP状态码：
// - 资源不存在  → 404
// - 冲突（重复）→ 409
// - 未认证      → 401
// - 无权限      → 403
// - 参数/业务   → 400
// - 服务端错误  → 500
//
// 用法：
//
//	err := userService.Register(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 记录详细错误到日志（内部错误不返回给客户端）
	if appErr.Err != nil {
		zap.L().Error("请求处理失败",
			zap.String("path", c.Request.URL.Path),
			zap.Int("code", appErr.Code),
			zap.String("message", appErr.Message),
			zap.Error(appErr.Err))
	}

	c.JSON(httpStatus(appErr.Code), Response{
		Code:       appErr.Code,
		Message:    appErr.Message,
		Violations: appErr.Violations,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(httpStatus(code), Response{
		Code:    code,
		Message: message,
	})
}

// httpStatus 业务错误码到HTTP状态码的映射
func httpStatus(code int) int {
	switch {
	case code == 0:
		return http.StatusOK
	case code == apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case code >= 40100 && code < 40200:
		return http.StatusUnauthorized
	case code >= 40400 && code < 40500:
		return http.StatusNotFound
	case code >= 40900 && code < 40910:
		return http.StatusConflict
	case code >= 40000 && code < 41000:
		// 参数错误（4091x）和业务规则错误（400xx）都归为400
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
