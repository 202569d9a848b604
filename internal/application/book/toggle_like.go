package book

import (
	"context"
	"time"

	"github.com/libreria/bookshop/internal/domain/book"
	apperrors "github.com/libreria/bookshop/pkg/errors"
	"github.com/libreria/bookshop/pkg/metrics"
)

// 点赞切换结果消息
const (
	MsgLikeAdded   = "Like added"
	MsgLikeRemoved = "Like removed"
)

// ToggleLikeUseCase 点赞切换用例
// 设计说明：
// 1. 已点赞则取消，未点赞则新增（toggle语义）
// 2. (user_id, book_id)唯一索引兜底：并发重复toggle最多触发唯一键冲突，不会产生重复赞
type ToggleLikeUseCase struct {
	bookService book.Service
	likeRepo    book.LikeRepository
}

// NewToggleLikeUseCase 创建点赞切换用例
func NewToggleLikeUseCase(bookService book.Service, likeRepo book.LikeRepository) *ToggleLikeUseCase {
	return &ToggleLikeUseCase{
		bookService: bookService,
		likeRepo:    likeRepo,
	}
}

// ToggleLikeResponse 点赞切换响应DTO
type ToggleLikeResponse struct {
	Message    string `json:"message"` // "Like added" | "Like removed"
	LikesCount int64  `json:"likes_count"`
}

// Execute 执行点赞切换
func (uc *ToggleLikeUseCase) Execute(ctx context.Context, userID, bookID uint) (*ToggleLikeResponse, error) {
	// 1. 确认图书存在（点赞不存在的图书返回404）
	b, err := uc.bookService.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !b.IsActive {
		return nil, book.ErrBookNotFound
	}

	// 2. 查找已有点赞
	existing, err := uc.likeRepo.Find(ctx, userID, bookID)
	switch {
	case err == nil:
		// 3a. 已点赞 → 取消
		if err := uc.likeRepo.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		metrics.LikesToggledTotal.WithLabelValues("removed").Inc()
		return uc.respond(ctx, bookID, MsgLikeRemoved)

	case apperrors.IsNotFound(err):
		// 3b. 未点赞 → 新增
		like := &book.Like{UserID: userID, BookID: bookID, CreatedAt: time.Now()}
		if err := uc.likeRepo.Create(ctx, like); err != nil {
			return nil, err
		}
		metrics.LikesToggledTotal.WithLabelValues("added").Inc()
		return uc.respond(ctx, bookID, MsgLikeAdded)

	default:
		return nil, err
	}
}

func (uc *ToggleLikeUseCase) respond(ctx context.Context, bookID uint, message string) (*ToggleLikeResponse, error) {
	count, err := uc.likeRepo.CountByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return &ToggleLikeResponse{Message: message, LikesCount: count}, nil
}
