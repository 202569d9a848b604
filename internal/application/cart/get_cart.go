package cart

import (
	"context"

	"github.com/libreria/bookshop/internal/domain/cart"
)

// GetCartUseCase 购物车查询用例
type GetCartUseCase struct {
	cartService cart.Service
}

// NewGetCartUseCase 创建购物车查询用例
func NewGetCartUseCase(cartService cart.Service) *GetCartUseCase {
	return &GetCartUseCase{cartService: cartService}
}

// CartLineItem 购物车行DTO
type CartLineItem struct {
	BookID    uint   `json:"book_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Type      string `json:"type"`
	Price     int64  `json:"price"` // 图书当前单价(分)
	Quantity  int    `json:"quantity"`
	ItemTotal int64  `json:"item_total"` // Price*Quantity
	ImageURL  string `json:"image_url"`
}

// GetCartResponse 购物车响应DTO
type GetCartResponse struct {
	Items      []CartLineItem `json:"items"`
	TotalItems int            `json:"total_items"` // 商品总件数
	TotalPrice int64          `json:"total_price"` // 总金额(分)
}

// Execute 执行购物车查询
// 注意：展示价格是图书当前价格，不是加购时的价格（下单时才做价格快照）
func (uc *GetCartUseCase) Execute(ctx context.Context, userID uint) (*GetCartResponse, error) {
	c, err := uc.cartService.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]CartLineItem, len(c.Lines))
	for i, line := range c.Lines {
		items[i] = CartLineItem{
			BookID:    line.BookID,
			Title:     line.Title,
			Author:    line.Author,
			Type:      line.Type,
			Price:     line.Price,
			Quantity:  line.Quantity,
			ItemTotal: line.ItemTotal,
			ImageURL:  line.ImageURL,
		}
	}

	return &GetCartResponse{
		Items:      items,
		TotalItems: c.TotalItems,
		TotalPrice: c.TotalPrice,
	}, nil
}
