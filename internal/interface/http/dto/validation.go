// Package dto HTTP层数据传输对象（binding tag校验）
package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/libreria/bookshop/pkg/errors"
)

// BindError 将参数绑定/校验错误翻译为带字段违规列表的AppError
// 设计说明：
// 1. validator.ValidationErrors逐条翻译成FieldViolation（字段名+可读描述）
// 2. 非校验类错误（JSON语法错误等）统一归为参数格式错误
func BindError(err error) *apperrors.AppError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperrors.ErrBindError
	}

	violations := make([]apperrors.FieldViolation, len(validationErrs))
	for i, fe := range validationErrs {
		violations[i] = apperrors.FieldViolation{
			Field:   strings.ToLower(fe.Field()),
			Message: violationMessage(fe),
		}
	}

	return apperrors.NewValidation("参数校验失败", violations...)
}

// violationMessage 按校验tag生成可读描述
func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "必填字段"
	case "email":
		return "邮箱格式不正确"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("长度不能小于%s", fe.Param())
		}
		return fmt.Sprintf("不能小于%s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("长度不能大于%s", fe.Param())
		}
		return fmt.Sprintf("不能大于%s", fe.Param())
	case "oneof":
		return fmt.Sprintf("必须是以下值之一: %s", fe.Param())
	default:
		return fmt.Sprintf("不满足校验规则%s", fe.Tag())
	}
}
