package mysql

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/libreria/bookshop/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（生产环境应使用版本化迁移脚本）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	zap.L().Info("数据库连接成功", zap.String("host", cfg.Database.Host))

	// 6. 自动迁移表结构
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	// 注意：这里使用GORM的模型定义（带tag），不是domain层的实体
	return db.AutoMigrate(
		&UserModel{},
		&CategoryModel{},
		&BookModel{},
		&BookImageModel{},
		&LikeModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	FirstName string         `gorm:"size:50;not null;comment:名"`
	LastName  string         `gorm:"size:50;not null;comment:姓"`
	Role      string         `gorm:"size:20;not null;default:CLIENT;comment:角色(CLIENT/MANAGER)"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// BookModel GORM图书模型
// 设计说明：
// 1. 价格使用int64存储"分"为单位（避免浮点数精度问题）
// 2. Title/Author加搜索索引
// 3. Categories多对多关联（连接表book_categories）
type BookModel struct {
	ID          uint             `gorm:"primaryKey"`
	Title       string           `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author      string           `gorm:"index:idx_search;size:100;not null;comment:作者"`
	Description string           `gorm:"type:text;comment:图书描述"`
	Price       int64            `gorm:"not null;comment:价格(分)"`
	Stock       int              `gorm:"default:0;comment:库存数量"`
	Type        string           `gorm:"size:20;not null;comment:类型(PHYSICAL/DIGITAL)"`
	FileURL     string           `gorm:"size:500;comment:电子书文件URL"`
	IsActive    bool             `gorm:"index;default:true;comment:是否上架"`
	Images      []BookImageModel `gorm:"foreignKey:BookID"`
	Categories  []CategoryModel  `gorm:"many2many:book_categories"`
	CreatedAt   time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt   time.Time        `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt   `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BookImageModel GORM图书图片模型
type BookImageModel struct {
	ID        uint      `gorm:"primaryKey"`
	BookID    uint      `gorm:"index;not null;comment:图书ID"`
	URL       string    `gorm:"size:500;not null;comment:图片URL"`
	IsPrimary bool      `gorm:"default:false;comment:是否主图"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (BookImageModel) TableName() string {
	return "book_images"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:50;not null;comment:分类名"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// LikeModel GORM点赞模型
// (user_id, book_id)唯一索引：一个用户对一本书最多一个赞
type LikeModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_book_like;not null;comment:用户ID"`
	BookID    uint      `gorm:"uniqueIndex:idx_user_book_like;index;not null;comment:图书ID"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (LikeModel) TableName() string {
	return "likes"
}

// CartItemModel GORM购物车条目模型
// 设计说明：
// 1. (user_id, book_id)唯一索引，支撑ON DUPLICATE KEY UPDATE原子累加
// 2. 不冗余价格字段：展示实时价格，下单时才做快照
type CartItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_book_cart;not null;comment:用户ID"`
	BookID    uint      `gorm:"uniqueIndex:idx_user_book_cart;index;not null;comment:图书ID"`
	Quantity  int       `gorm:"not null;comment:数量"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel GORM订单模型
// 设计说明：
// 1. 与OrderItemModel是一对多关系
// 2. OrderNo有唯一索引（业务主键）
// 3. Status使用int存储（节省空间，便于索引）
type OrderModel struct {
	ID        uint             `gorm:"primaryKey"`
	OrderNo   string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID    uint             `gorm:"index;not null;comment:买家用户ID"`
	Total     int64            `gorm:"not null;comment:订单总金额(分)"`
	Status    int              `gorm:"index;type:tinyint;default:1;comment:订单状态(1待支付2已支付3已发货4已完成5已取消)"`
	Items     []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// Price记录下单时的价格快照
type OrderItemModel struct {
	ID       uint  `gorm:"primaryKey"`
	OrderID  uint  `gorm:"index;not null;comment:订单ID"`
	BookID   uint  `gorm:"index;not null;comment:图书ID"`
	Quantity int   `gorm:"not null;comment:购买数量"`
	Price    int64 `gorm:"not null;comment:下单时单价(分)"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}
