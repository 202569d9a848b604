package book

import (
	"time"
)

// BookType 图书类型
// 设计说明：
// 1. 定义为封闭类型，非法取值在边界处被ParseBookType拒绝
// 2. 实体书（PHYSICAL）有库存概念，电子书（DIGITAL）库存无限
type BookType string

const (
	TypePhysical BookType = "PHYSICAL" // 实体书
	TypeDigital  BookType = "DIGITAL"  // 电子书
)

// IsValid 判断图书类型是否合法
func (t BookType) IsValid() bool {
	switch t {
	case TypePhysical, TypeDigital:
		return true
	}
	return false
}

// String 实现Stringer接口
func (t BookType) String() string {
	return string(t)
}

// ParseBookType 从字符串解析图书类型
func ParseBookType(s string) (BookType, bool) {
	t := BookType(s)
	return t, t.IsValid()
}

// Book 图书实体（聚合根）
// DDD设计说明：
// 1. Book是图书聚合的根实体，BookImage是聚合内的子实体
// 2. 价格使用int64存储"分"为单位（避免浮点数精度问题）
// 3. IsActive为false表示下架，客户端不可见、不可加购
// 4. FileURL仅电子书使用（上传PDF后填充）
type Book struct {
	ID          uint
	Title       string
	Author      string
	Description string
	Price       int64 // 价格（单位：分，1元=100分）
	Stock       int   // 库存数量（仅PHYSICAL有意义）
	Type        BookType
	FileURL     string // 电子书文件URL（PDF）
	IsActive    bool
	Images      []BookImage
	Categories  []Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookImage 图书图片（聚合内的子实体）
// IsPrimary标记主图，列表页只展示主图
type BookImage struct {
	ID        uint
	BookID    uint
	URL       string
	IsPrimary bool
	CreatedAt time.Time
}

// Category 图书分类
type Category struct {
	ID   uint
	Name string
}

// Like 用户对图书的点赞
// (user_id, book_id)唯一，一个用户对一本书最多一个赞
type Like struct {
	ID        uint
	UserID    uint
	BookID    uint
	CreatedAt time.Time
}

// NewBook 创建新图书（工厂方法）
// 初始为上架状态（IsActive=true）
func NewBook(title, author, description string, price int64, stock int, bookType BookType) *Book {
	now := time.Now()
	return &Book{
		Title:       title,
		Author:      author,
		Description: description,
		Price:       price,
		Stock:       stock,
		Type:        bookType,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasStockFor 判断库存是否足以覆盖requested数量
// 业务规则：
// 1. 电子书库存无限，永远返回true
// 2. 实体书要求requested<=Stock
func (b *Book) HasStockFor(requested int) bool {
	if b.Type == TypeDigital {
		return true
	}
	return requested <= b.Stock
}

// PrimaryImageURL 主图URL（无主图时回退第一张，没有图片返回空串）
func (b *Book) PrimaryImageURL() string {
	for _, img := range b.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(b.Images) > 0 {
		return b.Images[0].URL
	}
	return ""
}

// UpdatePrice 更新价格（领域行为）
// 业务规则：价格必须>0
func (b *Book) UpdatePrice(newPrice int64) error {
	if newPrice <= 0 {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateStock 更新库存（领域行为）
// 业务规则：库存不能为负数
func (b *Book) UpdateStock(newStock int) error {
	if newStock < 0 {
		return ErrInvalidStock
	}
	b.Stock = newStock
	b.UpdatedAt = time.Now()
	return nil
}

// AttachFile 关联电子书文件（上传PDF后调用）
// 业务规则：只有电子书可以关联文件
func (b *Book) AttachFile(fileURL string) error {
	if b.Type != TypeDigital {
		return ErrNotDigitalBook
	}
	b.FileURL = fileURL
	b.UpdatedAt = time.Now()
	return nil
}

// Deactivate 下架（领域行为）
func (b *Book) Deactivate() {
	b.IsActive = false
	b.UpdatedAt = time.Now()
}

// Activate 上架（领域行为）
func (b *Book) Activate() {
	b.IsActive = true
	b.UpdatedAt = time.Now()
}

// UpdateInfo 更新图书基本信息（空值表示不修改）
func (b *Book) UpdateInfo(title, author, description string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	if description != "" {
		b.Description = description
	}
	b.UpdatedAt = time.Now()
}
