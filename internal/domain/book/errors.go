package book

import (
	apperrors "github.com/libreria/bookshop/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在（或已下架）
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.ErrCategoryNotFound

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须大于0")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "库存不能为负数")

	// ErrInvalidType 无效的图书类型
	ErrInvalidType = apperrors.New(apperrors.ErrCodeInvalidParams, "图书类型必须为PHYSICAL或DIGITAL")

	// ErrNotDigitalBook 非电子书不能关联文件
	ErrNotDigitalBook = apperrors.New(apperrors.ErrCodeBusinessError, "只有电子书可以上传文件")

	// ErrInvalidFileType 不支持的上传文件类型
	ErrInvalidFileType = apperrors.New(apperrors.ErrCodeInvalidParams, "文件类型必须为image或pdf")
)
