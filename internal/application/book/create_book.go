// Package book 图书管理用例：上架、查询、修改、下架、点赞、文件上传
package book

import (
	"context"

	"github.com/libreria/bookshop/internal/domain/book"
)

// CreateBookUseCase 图书上架用例（仅MANAGER）
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建上架用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// CreateBookRequest 上架请求DTO
type CreateBookRequest struct {
	Title       string
	Author      string
	Description string
	Price       int64 // 价格（分）
	Stock       int
	Type        string // PHYSICAL | DIGITAL
	CategoryIDs []uint
}

// BookDetail 图书详情DTO
type BookDetail struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Stock       int      `json:"stock"`
	Type        string   `json:"type"`
	FileURL     string   `json:"file_url,omitempty"`
	ImageURL    string   `json:"image_url"`
	Categories  []string `json:"categories"`
	LikesCount  int64    `json:"likes_count"`
	CreatedAt   string   `json:"created_at"`
}

// Execute 执行上架
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookDetail, error) {
	bookType, ok := book.ParseBookType(req.Type)
	if !ok {
		return nil, book.ErrInvalidType
	}

	b, err := uc.bookService.CreateBook(ctx, req.Title, req.Author, req.Description,
		req.Price, req.Stock, bookType, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	return toBookDetail(b, 0), nil
}

// toBookDetail 领域实体 → 详情DTO
func toBookDetail(b *book.Book, likesCount int64) *BookDetail {
	categories := make([]string, len(b.Categories))
	for i, c := range b.Categories {
		categories[i] = c.Name
	}

	return &BookDetail{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		Stock:       b.Stock,
		Type:        b.Type.String(),
		FileURL:     b.FileURL,
		ImageURL:    b.PrimaryImageURL(),
		Categories:  categories,
		LikesCount:  likesCount,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
