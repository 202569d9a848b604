package book

import (
	"context"
)

// Service 图书领域服务接口
// 设计说明：
// 1. 领域服务封装跨实体的业务规则校验（价格范围、类型合法性、分类存在性）
// 2. 不依赖具体的Repository实现（依赖倒置）
// 3. 权限控制（仅MANAGER可写）在interface层的中间件完成，不在领域服务重复
type Service interface {
	// CreateBook 创建图书（上架）
	// 业务规则：
	// - 价格必须在1-99999999分之间
	// - 库存必须>=0
	// - 类型必须合法
	// - 关联的分类必须存在
	CreateBook(ctx context.Context, title, author, description string, price int64, stock int, bookType BookType, categoryIDs []uint) (*Book, error)

	// GetBook 根据ID获取图书详情（含图片与分类）
	GetBook(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书信息（空串/负值表示不修改对应字段）
	UpdateBook(ctx context.Context, id uint, title, author, description string, price int64, stock int) (*Book, error)

	// DeleteBook 删除图书（软删除）
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 按查询条件分页查询图书列表
	ListBooks(ctx context.Context, filter SearchFilter) ([]Summary, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// 价格上限：999999.99元
const maxPrice = 99999999

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, title, author, description string, price int64, stock int, bookType BookType, categoryIDs []uint) (*Book, error) {
	// 1. 类型校验
	if !bookType.IsValid() {
		return nil, ErrInvalidType
	}

	// 2. 价格范围校验
	if price < 1 || price > maxPrice {
		return nil, ErrInvalidPrice
	}

	// 3. 库存校验
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	// 4. 分类存在性校验
	categories := make([]Category, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		category, err := s.repo.FindCategoryByID(ctx, id)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}

	// 5. 创建图书实体并持久化
	book := NewBook(title, author, description, price, stock, bookType)
	book.Categories = categories

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// GetBook 根据ID获取图书详情
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书信息
func (s *service) UpdateBook(ctx context.Context, id uint, title, author, description string, price int64, stock int) (*Book, error) {
	// 1. 查询图书
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 更新基本信息（空串表示不修改）
	book.UpdateInfo(title, author, description)

	// 3. 更新价格（非正值表示不修改）
	if price > 0 {
		if price > maxPrice {
			return nil, ErrInvalidPrice
		}
		if err := book.UpdatePrice(price); err != nil {
			return nil, err
		}
	}

	// 4. 更新库存（负值表示不修改）
	if stock >= 0 {
		if err := book.UpdateStock(stock); err != nil {
			return nil, err
		}
	}

	// 5. 持久化
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	// 先确认存在，保证删除不存在的图书返回404而非静默成功
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListBooks 按查询条件分页查询图书列表
func (s *service) ListBooks(ctx context.Context, filter SearchFilter) ([]Summary, int64, error) {
	// 按分类筛选时先确认分类存在，不存在返回404而不是空列表
	if filter.CategoryID != 0 {
		if _, err := s.repo.FindCategoryByID(ctx, filter.CategoryID); err != nil {
			return nil, 0, err
		}
	}
	return s.repo.List(ctx, filter)
}
