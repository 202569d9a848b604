package book

import (
	"context"

	"github.com/libreria/bookshop/internal/domain/book"
)

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookService book.Service
	likeRepo    book.LikeRepository
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service, likeRepo book.LikeRepository) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
		likeRepo:    likeRepo,
	}
}

// Execute 执行详情查询
// 详情页返回完整信息：描述、主图、分类名称、点赞数
func (uc *GetBookUseCase) Execute(ctx context.Context, bookID uint) (*BookDetail, error) {
	// 1. 查询图书聚合（含图片与分类）
	b, err := uc.bookService.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	// 下架图书对外等同于不存在
	if !b.IsActive {
		return nil, book.ErrBookNotFound
	}

	// 2. 统计点赞数
	likesCount, err := uc.likeRepo.CountByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	return toBookDetail(b, likesCount), nil
}
