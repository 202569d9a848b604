package book

import (
	"context"

	"github.com/libreria/bookshop/internal/domain/book"
)

// UpdateBookUseCase 图书信息修改用例（仅MANAGER）
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建修改用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// UpdateBookRequest 修改请求DTO
// 零值语义：空串/非正价格/负库存表示"不修改该字段"
type UpdateBookRequest struct {
	BookID      uint
	Title       string
	Author      string
	Description string
	Price       int64
	Stock       int
}

// Execute 执行修改
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookDetail, error) {
	b, err := uc.bookService.UpdateBook(ctx, req.BookID, req.Title, req.Author,
		req.Description, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}
	return toBookDetail(b, 0), nil
}

// DeleteBookUseCase 图书删除用例（仅MANAGER，软删除）
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, bookID uint) error {
	return uc.bookService.DeleteBook(ctx, bookID)
}
