package book

import (
	"context"
)

// Summary 图书列表项（读模型）
// 列表页不需要完整聚合（描述、全部图片），只投影必要字段
type Summary struct {
	ID         uint
	Title      string
	Author     string
	Price      int64
	Type       BookType
	ImageURL   string // 主图URL
	LikesCount int64
}

// Repository 图书仓储接口（依赖倒置原则）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 便于Mock测试，不依赖具体数据库实现
type Repository interface {
	// Create 创建图书（含分类关联）
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书（预加载图片与分类）
	// 如果不存在，返回errors.ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书（软删除）
	Delete(ctx context.Context, id uint) error

	// List 按查询条件分页查询图书列表（投影为Summary）
	// 返回当前页数据和满足条件的总记录数
	List(ctx context.Context, filter SearchFilter) ([]Summary, int64, error)

	// LockByID 悲观锁查询图书（SELECT FOR UPDATE）
	// 用于加购/下单时锁定库存行，防止并发超卖
	// 必须在事务内调用（通过context传递事务）
	LockByID(ctx context.Context, id uint) (*Book, error)

	// AddImage 为图书追加图片
	AddImage(ctx context.Context, image *BookImage) error

	// FindCategoryByID 根据ID查找分类
	// 如果不存在，返回errors.ErrCategoryNotFound
	FindCategoryByID(ctx context.Context, id uint) (*Category, error)

	// ListCategories 查询全部分类
	ListCategories(ctx context.Context) ([]Category, error)
}

// LikeRepository 点赞仓储接口
// 单独拆出接口：点赞与图书聚合生命周期无关，调用方也不同（toggle接口）
type LikeRepository interface {
	// Find 查找用户对图书的点赞
	// 不存在时返回errors.ErrCodeNotFound类错误
	Find(ctx context.Context, userID, bookID uint) (*Like, error)

	// Create 创建点赞
	Create(ctx context.Context, like *Like) error

	// Delete 删除点赞
	Delete(ctx context.Context, id uint) error

	// CountByBook 统计图书的点赞数
	CountByBook(ctx context.Context, bookID uint) (int64, error)
}
