package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/libreria/bookshop/internal/domain/order"
	apperrors "github.com/libreria/bookshop/pkg/errors"
)

// orderRepository 订单仓储实现（MySQL）
// 设计说明：
// 1. Order和OrderItem是聚合关系，必须一起保存（同一事务）
// 2. 列表查询投影为Summary（联users表取买家信息，批量取明细），避免N+1
// 3. 事务通过context传递
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单
// GORM会通过foreignKey自动保存关联的Items，必须在事务中调用
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 回填自增ID
	o.ID = model.ID
	for i := range o.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}

	return nil
}

// FindByID 根据ID查找订单
// 使用Preload预加载Items，避免N+1查询
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	db := getDB(ctx, r.db)
	err := db.Preload("Items").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}

	return toOrderEntity(&model), nil
}

// FindByOrderNo 根据订单号查找订单
func (r *orderRepository) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	var model OrderModel
	db := getDB(ctx, r.db)
	err := db.Preload("Items").Where("order_no = ?", orderNo).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}

	return toOrderEntity(&model), nil
}

// Update 更新订单（主要用于状态更新，不更新Items）
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	db := getDB(ctx, r.db)
	result := db.Model(&OrderModel{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
		"status":     int(o.Status),
		"updated_at": o.UpdatedAt,
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单失败")
	}

	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// orderSummaryRow 订单列表联表查询的扫描目标
type orderSummaryRow struct {
	ID            uint
	OrderNo       string
	Total         int64
	Status        int
	CreatedAt     time.Time
	UserID        uint
	UserEmail     string
	UserFirstName string
	UserLastName  string
}

// itemSummaryRow 订单明细联表查询的扫描目标
type itemSummaryRow struct {
	OrderID  uint
	BookID   uint
	Title    string
	Author   string
	Quantity int
	Price    int64
}

// ListByUser 查询用户自己的订单列表
func (r *orderRepository) ListByUser(ctx context.Context, userID uint, page, limit int) ([]order.Summary, int64, error) {
	query := r.db.WithContext(ctx).
		Table("orders o").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.user_id = ?", userID)

	return r.listSummaries(ctx, query, page, limit)
}

// ListAll 管理端查询全部订单
// Search模糊匹配买家的邮箱、名、姓（OR关系，大小写不敏感）
func (r *orderRepository) ListAll(ctx context.Context, filter order.SearchFilter) ([]order.Summary, int64, error) {
	query := r.db.WithContext(ctx).
		Table("orders o").
		Joins("JOIN users u ON u.id = o.user_id")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("u.email LIKE ? OR u.first_name LIKE ? OR u.last_name LIKE ?",
			pattern, pattern, pattern)
	}

	return r.listSummaries(ctx, query, filter.Page, filter.Limit)
}

// listSummaries 订单列表公共查询逻辑：计数→分页取订单行→批量取明细
func (r *orderRepository) listSummaries(ctx context.Context, query *gorm.DB, page, limit int) ([]order.Summary, int64, error) {
	// 1. 查询总数
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单总数失败")
	}

	// 2. 分页查询订单行（含买家信息）
	var rows []orderSummaryRow
	err := query.
		Select(`o.id, o.order_no, o.total, o.status, o.created_at,
			u.id AS user_id, u.email AS user_email,
			u.first_name AS user_first_name, u.last_name AS user_last_name`).
		Order("o.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&rows).Error

	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	if len(rows) == 0 {
		return []order.Summary{}, total, nil
	}

	// 3. 批量查询当前页订单的明细（联books取标题/作者）
	orderIDs := make([]uint, len(rows))
	for i, row := range rows {
		orderIDs[i] = row.ID
	}

	var itemRows []itemSummaryRow
	err = r.db.WithContext(ctx).
		Table("order_items oi").
		Select("oi.order_id, oi.book_id, b.title, b.author, oi.quantity, oi.price").
		Joins("LEFT JOIN books b ON b.id = oi.book_id").
		Where("oi.order_id IN ?", orderIDs).
		Scan(&itemRows).Error

	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单明细失败")
	}

	itemsByOrder := make(map[uint][]order.ItemSummary, len(rows))
	for _, item := range itemRows {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], order.ItemSummary{
			BookID:   item.BookID,
			Title:    item.Title,
			Author:   item.Author,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	// 4. 组装Summary
	summaries := make([]order.Summary, len(rows))
	for i, row := range rows {
		summaries[i] = order.Summary{
			ID:            row.ID,
			OrderNo:       row.OrderNo,
			Total:         row.Total,
			Status:        order.Status(row.Status),
			CreatedAt:     row.CreatedAt,
			UserID:        row.UserID,
			UserEmail:     row.UserEmail,
			UserFirstName: row.UserFirstName,
			UserLastName:  row.UserLastName,
			Items:         itemsByOrder[row.ID],
		}
	}

	return summaries, total, nil
}

// =========================================
// 辅助函数：模型转换
// =========================================

// toOrderModel 领域实体 → GORM模型
func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			ID:       item.ID,
			OrderID:  item.OrderID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &OrderModel{
		ID:        o.ID,
		OrderNo:   o.OrderNo,
		UserID:    o.UserID,
		Total:     o.Total,
		Status:    int(o.Status),
		Items:     items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(model *OrderModel) *order.Order {
	items := make([]order.Item, len(model.Items))
	for i, item := range model.Items {
		items[i] = order.Item{
			ID:       item.ID,
			OrderID:  item.OrderID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &order.Order{
		ID:        model.ID,
		OrderNo:   model.OrderNo,
		UserID:    model.UserID,
		Total:     model.Total,
		Status:    order.Status(model.Status),
		Items:     items,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
