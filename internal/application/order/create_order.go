// Package order 订单用例：下单、查询
package order

import (
	"context"
	"time"

	"github.com/libreria/bookshop/internal/domain/cart"
	"github.com/libreria/bookshop/internal/domain/order"
	"github.com/libreria/bookshop/internal/domain/transaction"
	"github.com/libreria/bookshop/pkg/metrics"
)

// CreateOrderUseCase 创建订单用例
// 设计说明：
// 1. 订单来源是购物车：逐行转为订单明细（价格快照），成功后清空购物车
// 2. 订单创建、明细写入、购物车清空在同一事务内，要么全成功要么全失败
// 3. 金额由领域实体根据明细重算，不信任任何外部传入的总价
type CreateOrderUseCase struct {
	orderRepo order.Repository
	cartRepo  cart.Repository
	txManager transaction.Manager
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	cartRepo cart.Repository,
	txManager transaction.Manager,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		txManager: txManager,
	}
}

// CreateOrderResponse 下单响应DTO
type CreateOrderResponse struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	Total     int64  `json:"total"` // 总金额(分)
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行下单
func (uc *CreateOrderUseCase) Execute(ctx context.Context, userID uint) (*CreateOrderResponse, error) {
	start := time.Now()

	var result *order.Order
	err := uc.txManager.WithTx(ctx, func(txCtx context.Context) error {
		// 1. 读取购物车（事务内读取，与清空操作看到同一快照）
		lines, err := uc.cartRepo.ListByUser(txCtx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return cart.ErrCartEmpty
		}

		// 2. 购物车行 → 订单明细（价格快照）
		// 快照下单时刻的图书价格，之后改价不影响已生成的订单
		items := make([]order.Item, len(lines))
		for i, line := range lines {
			items[i] = order.Item{
				BookID:   line.BookID,
				Quantity: line.Quantity,
				Price:    line.Price,
			}
		}

		// 3. 创建订单聚合并持久化
		// 注意：下单不扣减库存（无库存预占的结算模型），库存只在加购时校验
		newOrder, err := order.NewOrder(order.GenerateOrderNo(), userID, items)
		if err != nil {
			return err
		}
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// 4. 清空购物车（同一事务，下单失败购物车原样保留）
		if err := uc.cartRepo.DeleteByUser(txCtx, userID); err != nil {
			return err
		}

		result = newOrder
		return nil
	})

	if err != nil {
		metrics.OrdersFailedTotal.Inc()
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderCreationDuration.Observe(time.Since(start).Seconds())

	return &CreateOrderResponse{
		OrderID:   result.ID,
		OrderNo:   result.OrderNo,
		Total:     result.Total,
		Status:    result.Status.String(),
		CreatedAt: result.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
