package cart

import (
	"context"
)

// Repository 购物车仓储接口（依赖倒置原则）
type Repository interface {
	// Upsert 新增或累加购物车条目（原子操作）
	// 同一(userID, bookID)已存在时数量累加而不是覆盖
	// 实现使用INSERT ... ON DUPLICATE KEY UPDATE quantity = quantity + ?
	Upsert(ctx context.Context, item *Item) error

	// FindByUserAndBook 查找用户对某本书的购物车条目
	// 不存在时返回(nil, nil)，调用方据此区分"首次加购"与"累加"
	FindByUserAndBook(ctx context.Context, userID, bookID uint) (*Item, error)

	// ListByUser 查询用户购物车（关联图书实时价格与主图）
	ListByUser(ctx context.Context, userID uint) ([]Line, error)

	// Remove 删除单个条目
	Remove(ctx context.Context, userID, bookID uint) error

	// DeleteByUser 清空用户购物车（下单成功后调用，需在下单事务内）
	DeleteByUser(ctx context.Context, userID uint) error
}
