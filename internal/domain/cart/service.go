package cart

import (
	"context"

	"github.com/libreria/bookshop/internal/domain/book"
	"github.com/libreria/bookshop/internal/domain/transaction"
)

// Service 购物车领域服务
// 设计说明：
// 1. 加购是跨聚合操作（图书库存+购物车条目），需要事务保护
// 2. 库存校验和写入必须原子完成：事务内先SELECT FOR UPDATE锁定图书行，
//    再校验"已有数量+本次数量<=库存"，最后原子Upsert——并发加购无法绕过校验
type Service interface {
	// AddToCart 加入购物车
	// 业务规则：
	// 1. 图书必须存在且上架（否则返回图书不存在）
	// 2. 实体书：购物车已有数量+本次数量不能超过库存
	// 3. 电子书：不受库存约束
	// 4. 重复加购累加数量而不是覆盖
	AddToCart(ctx context.Context, userID, bookID uint, quantity int) error

	// GetCart 查询购物车（含实时价格、合计金额）
	// 购物车为空时返回ErrCartEmpty
	GetCart(ctx context.Context, userID uint) (*Cart, error)

	// RemoveFromCart 移除单个条目
	RemoveFromCart(ctx context.Context, userID, bookID uint) error
}

type service struct {
	repo     Repository
	bookRepo book.Repository
	txm      transaction.Manager
}

// NewService 创建购物车服务
func NewService(repo Repository, bookRepo book.Repository, txm transaction.Manager) Service {
	return &service{
		repo:     repo,
		bookRepo: bookRepo,
		txm:      txm,
	}
}

// AddToCart 加入购物车
func (s *service) AddToCart(ctx context.Context, userID, bookID uint, quantity int) error {
	// 1. 数量校验
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	// 2. 事务内完成"锁定图书→校验库存→原子累加"
	return s.txm.WithTx(ctx, func(txCtx context.Context) error {
		// 2.1 悲观锁锁定图书行（并发加购在此串行化）
		b, err := s.bookRepo.LockByID(txCtx, bookID)
		if err != nil {
			return err
		}

		// 2.2 下架图书对客户端不可见
		if !b.IsActive {
			return book.ErrBookNotFound
		}

		// 2.3 实体书校验库存：已有数量+本次数量不能超过库存
		if b.Type == book.TypePhysical {
			existing, err := s.repo.FindByUserAndBook(txCtx, userID, bookID)
			if err != nil {
				return err
			}
			already := 0
			if existing != nil {
				already = existing.Quantity
			}
			if !b.HasStockFor(already + quantity) {
				return ErrInsufficientStock
			}
		}

		// 2.4 原子累加写入
		return s.repo.Upsert(txCtx, NewItem(userID, bookID, quantity))
	})
}

// GetCart 查询购物车
func (s *service) GetCart(ctx context.Context, userID uint) (*Cart, error) {
	lines, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	c := BuildCart(lines)
	return &c, nil
}

// RemoveFromCart 移除单个条目
func (s *service) RemoveFromCart(ctx context.Context, userID, bookID uint) error {
	return s.repo.Remove(ctx, userID, bookID)
}
