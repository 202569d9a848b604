// Package cart 购物车用例：加购、查询、移除
package cart

import (
	"context"

	"github.com/libreria/bookshop/internal/domain/cart"
	"github.com/libreria/bookshop/pkg/metrics"
)

// AddToCartUseCase 加购用例
// 设计说明：库存校验与数量累加的原子性由领域服务内的事务+行锁保证，
// 用例层只做编排与指标上报
type AddToCartUseCase struct {
	cartService cart.Service
}

// NewAddToCartUseCase 创建加购用例
func NewAddToCartUseCase(cartService cart.Service) *AddToCartUseCase {
	return &AddToCartUseCase{cartService: cartService}
}

// AddToCartRequest 加购请求DTO
type AddToCartRequest struct {
	UserID   uint // 从JWT中提取
	BookID   uint
	Quantity int
}

// Execute 执行加购
func (uc *AddToCartUseCase) Execute(ctx context.Context, req AddToCartRequest) error {
	if err := uc.cartService.AddToCart(ctx, req.UserID, req.BookID, req.Quantity); err != nil {
		return err
	}

	metrics.CartItemsAddedTotal.Add(float64(req.Quantity))
	return nil
}

// RemoveFromCartUseCase 移除购物车条目用例
type RemoveFromCartUseCase struct {
	cartService cart.Service
}

// NewRemoveFromCartUseCase 创建移除用例
func NewRemoveFromCartUseCase(cartService cart.Service) *RemoveFromCartUseCase {
	return &RemoveFromCartUseCase{cartService: cartService}
}

// Execute 执行移除
func (uc *RemoveFromCartUseCase) Execute(ctx context.Context, userID, bookID uint) error {
	return uc.cartService.RemoveFromCart(ctx, userID, bookID)
}
