package book

import (
	"context"

	"github.com/libreria/bookshop/internal/domain/book"
	"github.com/libreria/bookshop/pkg/pagination"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明：
// 1. 支持分页、关键词搜索、分类筛选
// 2. 列表只返回投影字段（不含描述与完整图片列表），减少数据传输量
// 3. 分页元数据（页码窗口、省略号）由pkg/pagination统一计算
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page       int    // 页码(从1开始)
	Limit      int    // 每页数量
	Search     string // 搜索关键词(搜索标题、作者、描述)
	CategoryID uint   // 按分类筛选(0表示不筛选)
}

// BookListItem 列表项DTO
type BookListItem struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Price      int64  `json:"price"` // 价格(分)
	Type       string `json:"type"`
	ImageURL   string `json:"image_url"`
	LikesCount int64  `json:"likes_count"`
}

// Execute 执行列表查询
// 返回带页码窗口的分页结果（pageLinks中相邻省略号、只跳一页等规则见pkg/pagination）
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*pagination.PageInfo, error) {
	// 1. 构建查询条件（默认值与范围限制由构造函数收敛）
	// 客户端列表只展示上架图书
	filter := book.NewSearchFilter(req.Search, req.CategoryID, true, req.Page, req.Limit)

	// 2. 查询当前页数据与总记录数
	summaries, total, err := uc.bookService.ListBooks(ctx, filter)
	if err != nil {
		return nil, err
	}

	// 3. 转换为DTO
	list := make([]BookListItem, len(summaries))
	for i, s := range summaries {
		list[i] = BookListItem{
			ID:         s.ID,
			Title:      s.Title,
			Author:     s.Author,
			Price:      s.Price,
			Type:       s.Type.String(),
			ImageURL:   s.ImageURL,
			LikesCount: s.LikesCount,
		}
	}

	// 4. 计算分页元数据
	return pagination.Paginate(list, total, filter.Limit, filter.Page)
}
