package cart

import (
	apperrors "github.com/libreria/bookshop/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrCartEmpty 购物车为空
	ErrCartEmpty = apperrors.ErrCartEmpty

	// ErrInvalidQuantity 加购数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")

	// ErrInsufficientStock 库存不足（已有数量+本次数量超过库存）
	ErrInsufficientStock = apperrors.ErrInsufficientStock
)
