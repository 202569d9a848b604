// Package cart 购物车领域：加购、查询、聚合计算
package cart

import (
	"time"
)

// Item 购物车条目（实体）
// 设计说明：
// 1. (UserID, BookID)唯一，同一本书重复加购只累加数量
// 2. 不冗余存储价格：购物车展示时实时取图书当前价格（下单时才做价格快照）
type Item struct {
	ID        uint
	UserID    uint
	BookID    uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem 创建购物车条目（工厂方法）
func NewItem(userID, bookID uint, quantity int) *Item {
	now := time.Now()
	return &Item{
		UserID:    userID,
		BookID:    bookID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Line 购物车展示行（读模型）
// 关联图书的实时信息：当前价格、主图
type Line struct {
	BookID    uint
	Title     string
	Author    string
	Type      string
	Price     int64 // 图书当前单价（分）
	Quantity  int
	ItemTotal int64 // Price*Quantity
	ImageURL  string
}

// Cart 购物车聚合视图（读模型）
type Cart struct {
	Lines      []Line
	TotalItems int   // 商品总件数（数量求和）
	TotalPrice int64 // 总金额（分）
}

// BuildCart 聚合购物车行，计算总件数与总金额（纯函数）
func BuildCart(lines []Line) Cart {
	c := Cart{Lines: lines}
	for i := range lines {
		lines[i].ItemTotal = lines[i].Price * int64(lines[i].Quantity)
		c.TotalItems += lines[i].Quantity
		c.TotalPrice += lines[i].ItemTotal
	}
	return c
}
