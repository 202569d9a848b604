package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/libreria/bookshop/internal/domain/cart"
	apperrors "github.com/libreria/bookshop/pkg/errors"
)

// cartRepository 购物车仓储实现（MySQL）
// 设计说明：
// 1. Upsert使用INSERT ... ON DUPLICATE KEY UPDATE quantity = quantity + ?
//    依赖(user_id, book_id)唯一索引，数据库层保证累加原子性
// 2. ListByUser联表投影为展示行（实时价格、主图），避免N+1
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// Upsert 新增或累加购物车条目（原子操作）
func (r *cartRepository) Upsert(ctx context.Context, item *cart.Item) error {
	model := &CartItemModel{
		UserID:   item.UserID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
	}

	// INSERT INTO cart_items (...) VALUES (...)
	// ON DUPLICATE KEY UPDATE quantity = quantity + VALUES相应数量
	db := getDB(ctx, r.db)
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", item.Quantity),
			"updated_at": item.UpdatedAt,
		}),
	}).Create(model).Error

	if err != nil {
		return apperrors.Wrap(err, "写入购物车失败")
	}

	item.ID = model.ID
	return nil
}

// FindByUserAndBook 查找用户对某本书的购物车条目
// 不存在时返回(nil, nil)
func (r *cartRepository) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*cart.Item, error) {
	var model CartItemModel
	db := getDB(ctx, r.db)
	err := db.Where("user_id = ? AND book_id = ?", userID, bookID).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}

	return toCartItemEntity(&model), nil
}

// cartLineRow 购物车联表查询的扫描目标
type cartLineRow struct {
	BookID   uint
	Title    string
	Author   string
	Type     string
	Price    int64
	Quantity int
	ImageURL string
}

// ListByUser 查询用户购物车（关联图书实时价格与主图）
// 已下架或已删除的图书不出现在结果中
// 下单事务内调用时通过getDB走事务连接，保证读到的购物车与随后的清空在同一事务
func (r *cartRepository) ListByUser(ctx context.Context, userID uint) ([]cart.Line, error) {
	var rows []cartLineRow

	db := getDB(ctx, r.db)
	err := db.
		Table("cart_items ci").
		Select(`ci.book_id, b.title, b.author, b.type, b.price, ci.quantity,
			COALESCE((SELECT bi.url FROM book_images bi
				WHERE bi.book_id = b.id AND bi.is_primary = 1 LIMIT 1), '') AS image_url`).
		Joins("JOIN books b ON b.id = ci.book_id AND b.deleted_at IS NULL AND b.is_active = 1").
		Where("ci.user_id = ?", userID).
		Order("ci.created_at").
		Scan(&rows).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	lines := make([]cart.Line, len(rows))
	for i, row := range rows {
		lines[i] = cart.Line{
			BookID:   row.BookID,
			Title:    row.Title,
			Author:   row.Author,
			Type:     row.Type,
			Price:    row.Price,
			Quantity: row.Quantity,
			ImageURL: row.ImageURL,
		}
	}
	return lines, nil
}

// Remove 删除单个条目
func (r *cartRepository) Remove(ctx context.Context, userID, bookID uint) error {
	db := getDB(ctx, r.db)
	err := db.
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&CartItemModel{}).Error

	if err != nil {
		return apperrors.Wrap(err, "删除购物车条目失败")
	}
	return nil
}

// DeleteByUser 清空用户购物车（下单事务内调用）
func (r *cartRepository) DeleteByUser(ctx context.Context, userID uint) error {
	db := getDB(ctx, r.db)
	if err := db.Where("user_id = ?", userID).Delete(&CartItemModel{}).Error; err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}

// toCartItemEntity GORM模型 → 领域实体
func toCartItemEntity(model *CartItemModel) *cart.Item {
	return &cart.Item{
		ID:        model.ID,
		UserID:    model.UserID,
		BookID:    model.BookID,
		Quantity:  model.Quantity,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
