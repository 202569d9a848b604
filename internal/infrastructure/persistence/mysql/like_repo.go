package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/libreria/bookshop/internal/domain/book"
	apperrors "github.com/libreria/bookshop/pkg/errors"
)

// likeRepository 点赞仓储实现（MySQL）
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository 创建点赞仓储
func NewLikeRepository(db *gorm.DB) book.LikeRepository {
	return &likeRepository{db: db}
}

// Find 查找用户对图书的点赞
func (r *likeRepository) Find(ctx context.Context, userID, bookID uint) (*book.Like, error) {
	var model LikeModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "点赞记录不存在")
		}
		return nil, apperrors.Wrap(err, "查询点赞失败")
	}

	return &book.Like{
		ID:        model.ID,
		UserID:    model.UserID,
		BookID:    model.BookID,
		CreatedAt: model.CreatedAt,
	}, nil
}

// Create 创建点赞
// (user_id, book_id)唯一索引兜底：并发重复点赞返回重复错误
func (r *likeRepository) Create(ctx context.Context, like *book.Like) error {
	model := &LikeModel{
		UserID: like.UserID,
		BookID: like.BookID,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "已点过赞")
		}
		return apperrors.Wrap(err, "创建点赞失败")
	}

	like.ID = model.ID
	like.CreatedAt = model.CreatedAt
	return nil
}

// Delete 删除点赞
func (r *likeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&LikeModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除点赞失败")
	}
	return nil
}

// CountByBook 统计图书的点赞数
func (r *likeRepository) CountByBook(ctx context.Context, bookID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&LikeModel{}).
		Where("book_id = ?", bookID).
		Count(&count).Error

	if err != nil {
		return 0, apperrors.Wrap(err, "统计点赞数失败")
	}
	return count, nil
}
