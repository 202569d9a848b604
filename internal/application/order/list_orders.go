package order

import (
	"context"

	"github.com/libreria/bookshop/internal/domain/order"
	"github.com/libreria/bookshop/pkg/pagination"
)

// OrderListItem 订单列表项DTO
type OrderListItem struct {
	ID        uint            `json:"id"`
	OrderNo   string          `json:"order_no"`
	Total     int64           `json:"total"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
	Items     []OrderItemView `json:"items"`

	// 买家信息（仅管理端列表填充）
	User *OrderUserView `json:"user,omitempty"`
}

// OrderItemView 订单明细DTO
type OrderItemView struct {
	BookID   uint   `json:"book_id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"` // 下单时的单价快照(分)
}

// OrderUserView 买家信息DTO
type OrderUserView struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ListUserOrdersUseCase 用户订单列表查询用例（客户端"我的订单"）
type ListUserOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListUserOrdersUseCase 创建用户订单列表用例
func NewListUserOrdersUseCase(orderRepo order.Repository) *ListUserOrdersUseCase {
	return &ListUserOrdersUseCase{orderRepo: orderRepo}
}

// Execute 执行查询（按创建时间倒序分页）
func (uc *ListUserOrdersUseCase) Execute(ctx context.Context, userID uint, page, limit int) (*pagination.PageInfo, error) {
	// 借用SearchFilter做默认值与边界收敛
	filter := order.NewSearchFilter("", page, limit)

	summaries, total, err := uc.orderRepo.ListByUser(ctx, userID, filter.Page, filter.Limit)
	if err != nil {
		return nil, err
	}

	// 客户端列表不返回买家信息（就是本人）
	list := toOrderList(summaries, false)
	return pagination.Paginate(list, total, filter.Limit, filter.Page)
}

// ListAllOrdersUseCase 管理端订单列表查询用例（仅MANAGER）
// 支持按买家邮箱/姓名模糊搜索
type ListAllOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListAllOrdersUseCase 创建管理端订单列表用例
func NewListAllOrdersUseCase(orderRepo order.Repository) *ListAllOrdersUseCase {
	return &ListAllOrdersUseCase{orderRepo: orderRepo}
}

// Execute 执行查询
func (uc *ListAllOrdersUseCase) Execute(ctx context.Context, search string, page, limit int) (*pagination.PageInfo, error) {
	filter := order.NewSearchFilter(search, page, limit)

	summaries, total, err := uc.orderRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	list := toOrderList(summaries, true)
	return pagination.Paginate(list, total, filter.Limit, filter.Page)
}

// toOrderList 读模型 → 列表DTO
func toOrderList(summaries []order.Summary, withUser bool) []OrderListItem {
	list := make([]OrderListItem, len(summaries))
	for i, s := range summaries {
		items := make([]OrderItemView, len(s.Items))
		for j, item := range s.Items {
			items[j] = OrderItemView{
				BookID:   item.BookID,
				Title:    item.Title,
				Author:   item.Author,
				Quantity: item.Quantity,
				Price:    item.Price,
			}
		}

		list[i] = OrderListItem{
			ID:        s.ID,
			OrderNo:   s.OrderNo,
			Total:     s.Total,
			Status:    s.Status.String(),
			CreatedAt: s.CreatedAt.Format("2006-01-02 15:04:05"),
			Items:     items,
		}

		if withUser {
			list[i].User = &OrderUserView{
				ID:        s.UserID,
				Email:     s.UserEmail,
				FirstName: s.UserFirstName,
				LastName:  s.UserLastName,
			}
		}
	}
	return list
}
