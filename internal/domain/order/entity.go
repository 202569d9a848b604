package order

import (
	"time"
)

// Status 订单状态
// 设计说明：
// 1. 使用int类型而非string（节省存储空间，便于索引）
// 2. 状态值1-5递增，便于理解流转方向
// 3. 对外序列化使用String()的英文名称（"Pending"等）
type Status int

const (
	StatusPending   Status = 1 // 待支付
	StatusPaid      Status = 2 // 已支付
	StatusShipped   Status = 3 // 已发货
	StatusCompleted Status = 4 // 已完成
	StatusCancelled Status = 5 // 已取消
)

// String 对外展示名称
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusPaid:
		return "Paid"
	case StatusShipped:
		return "Shipped"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// IsValid 判断状态是否合法
func (s Status) IsValid() bool {
	return s >= StatusPending && s <= StatusCancelled
}

// ParseStatus 从展示名称解析状态（管理端按状态筛选时使用）
func ParseStatus(name string) (Status, bool) {
	for s := StatusPending; s <= StatusCancelled; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// Order 订单实体（聚合根）
// 设计说明：
// 1. Order是聚合根，OrderItem是聚合内的子实体
// 2. Total冗余存储下单时的总金额（商家改价不影响历史订单）
// 3. OrderNo为业务主键（全局唯一，对外展示）
type Order struct {
	ID        uint
	OrderNo   string
	UserID    uint
	Total     int64 // 订单总金额（分）
	Status    Status
	Items     []Item
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item 订单明细项
// 设计说明：
// 1. 不是独立聚合根，必须通过Order访问
// 2. Price是下单时的单价快照，商家改价后历史订单金额不变
// 3. 只保存BookID不直接关联Book对象（避免跨聚合引用）
type Item struct {
	ID       uint
	OrderID  uint
	BookID   uint
	Quantity int
	Price    int64 // 下单时的单价（分）
}

// NewOrder 创建新订单（工厂方法）
// 初始状态为Pending，Total由明细计算得出（不信任外部传入的金额）
func NewOrder(orderNo string, userID uint, items []Item) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrInvalidOrderItems
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	now := time.Now()
	o := &Order{
		OrderNo:   orderNo,
		UserID:    userID,
		Status:    StatusPending,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.Total = o.CalculateTotal()
	return o, nil
}

// CalculateTotal 计算订单总金额（明细单价×数量求和）
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// CanTransitionTo 检查是否可以转换到目标状态
// 状态机：Pending→Paid→Shipped→Completed，Pending/Paid→Cancelled
func (o *Order) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusPending:   {StatusPaid, StatusCancelled},
		StatusPaid:      {StatusShipped, StatusCancelled},
		StatusShipped:   {StatusCompleted},
		StatusCompleted: {}, // 终态
		StatusCancelled: {}, // 终态
	}

	for _, allowed := range transitions[o.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo 状态转换
func (o *Order) TransitionTo(target Status) error {
	if !o.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// Pay 支付订单（领域行为）
func (o *Order) Pay() error {
	return o.TransitionTo(StatusPaid)
}

// Ship 发货（领域行为）
func (o *Order) Ship() error {
	return o.TransitionTo(StatusShipped)
}

// Complete 完成订单（领域行为）
func (o *Order) Complete() error {
	return o.TransitionTo(StatusCompleted)
}

// Cancel 取消订单（领域行为）
func (o *Order) Cancel() error {
	return o.TransitionTo(StatusCancelled)
}

// IsOwnedBy 检查订单是否属于指定用户（防止越权访问他人订单）
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
