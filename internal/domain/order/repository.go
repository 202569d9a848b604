package order

import (
	"context"
	"time"
)

// Summary 订单列表项（读模型）
// 列表页关联展示买家信息与明细（含图书标题/作者），避免N+1查询
type Summary struct {
	ID        uint
	OrderNo   string
	Total     int64
	Status    Status
	CreatedAt time.Time

	// 买家信息（管理端列表展示）
	UserID        uint
	UserEmail     string
	UserFirstName string
	UserLastName  string

	Items []ItemSummary
}

// ItemSummary 订单明细展示项
type ItemSummary struct {
	BookID   uint
	Title    string
	Author   string
	Quantity int
	Price    int64 // 下单时的单价快照（分）
}

// Repository 订单仓储接口（依赖倒置原则）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 支持事务操作（通过context传递事务）
type Repository interface {
	// Create 创建订单（包含订单明细，必须在同一事务中）
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单（包含订单明细）
	// 如果不存在，返回errors.ErrOrderNotFound
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByOrderNo 根据订单号查找订单
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// Update 更新订单（主要用于状态更新）
	Update(ctx context.Context, order *Order) error

	// ListByUser 查询用户自己的订单列表（分页，按创建时间倒序）
	ListByUser(ctx context.Context, userID uint, page, limit int) ([]Summary, int64, error)

	// ListAll 管理端查询全部订单（支持按买家信息模糊搜索）
	ListAll(ctx context.Context, filter SearchFilter) ([]Summary, int64, error)
}
