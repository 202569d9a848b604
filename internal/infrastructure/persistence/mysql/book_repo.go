package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/libreria/bookshop/internal/domain/book"
	apperrors "github.com/libreria/bookshop/pkg/errors"
)

// bookRepository 图书仓储实现（MySQL）
// 设计说明：
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 列表查询投影为Summary（子查询统计点赞数、取主图），避免N+1
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书（含分类关联）
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	model := toBookModel(b)

	// 2. 插入数据库（GORM自动写入book_categories连接表）
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 3. 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书（预加载图片与分类）
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := getDB(ctx, r.db)
	err := db.Preload("Images").Preload("Categories").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息
// 只更新标量字段，图片/分类关联由专门的方法维护
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	db := getDB(ctx, r.db)
	result := db.Model(&BookModel{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"title":       b.Title,
		"author":      b.Author,
		"description": b.Description,
		"price":       b.Price,
		"stock":       b.Stock,
		"file_url":    b.FileURL,
		"is_active":   b.IsActive,
		"updated_at":  b.UpdatedAt,
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// Delete 删除图书（软删除）
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// bookSummaryRow 列表查询的扫描目标（投影）
type bookSummaryRow struct {
	ID         uint
	Title      string
	Author     string
	Price      int64
	Type       string
	ImageURL   string
	LikesCount int64
}

// List 按查询条件分页查询图书列表
// 投影查询：
// - 主图：相关子查询取is_primary=1的图片URL
// - 点赞数：相关子查询COUNT(likes)
func (r *bookRepository) List(ctx context.Context, filter book.SearchFilter) ([]book.Summary, int64, error) {
	var total int64

	query := r.db.WithContext(ctx).Model(&BookModel{})

	// 上架过滤（客户端列表）
	if filter.OnlyActive {
		query = query.Where("books.is_active = ?", true)
	}

	// 关键词搜索（标题、作者、描述，大小写不敏感——MySQL默认collation即不区分大小写）
	if filter.Keyword != "" {
		keyword := "%" + filter.Keyword + "%"
		query = query.Where("books.title LIKE ? OR books.author LIKE ? OR books.description LIKE ?",
			keyword, keyword, keyword)
	}

	// 分类过滤（连接表）
	if filter.CategoryID != 0 {
		query = query.Joins("JOIN book_categories bc ON bc.book_model_id = books.id").
			Where("bc.category_model_id = ?", filter.CategoryID)
	}

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	// 分页投影查询
	var rows []bookSummaryRow
	err := query.
		Select(`books.id, books.title, books.author, books.price, books.type,
			COALESCE((SELECT bi.url FROM book_images bi
				WHERE bi.book_id = books.id AND bi.is_primary = 1 LIMIT 1), '') AS image_url,
			(SELECT COUNT(*) FROM likes l WHERE l.book_id = books.id) AS likes_count`).
		Order("books.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Scan(&rows).Error

	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	summaries := make([]book.Summary, len(rows))
	for i, row := range rows {
		summaries[i] = book.Summary{
			ID:         row.ID,
			Title:      row.Title,
			Author:     row.Author,
			Price:      row.Price,
			Type:       book.BookType(row.Type),
			ImageURL:   row.ImageURL,
			LikesCount: row.LikesCount,
		}
	}

	return summaries, total, nil
}

// LockByID 悲观锁查询图书（SELECT FOR UPDATE）
// 必须在事务内调用（通过getDB从context获取事务DB）
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := getDB(ctx, r.db)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// AddImage 为图书追加图片
func (r *bookRepository) AddImage(ctx context.Context, image *book.BookImage) error {
	model := &BookImageModel{
		BookID:    image.BookID,
		URL:       image.URL,
		IsPrimary: image.IsPrimary,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "保存图书图片失败")
	}

	image.ID = model.ID
	image.CreatedAt = model.CreatedAt
	return nil
}

// FindCategoryByID 根据ID查找分类
func (r *bookRepository) FindCategoryByID(ctx context.Context, id uint) (*book.Category, error) {
	var model CategoryModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	return &book.Category{ID: model.ID, Name: model.Name}, nil
}

// ListCategories 查询全部分类
func (r *bookRepository) ListCategories(ctx context.Context) ([]book.Category, error) {
	var models []CategoryModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]book.Category, len(models))
	for i, m := range models {
		categories[i] = book.Category{ID: m.ID, Name: m.Name}
	}
	return categories, nil
}

// =========================================
// 辅助函数：模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	categories := make([]CategoryModel, len(b.Categories))
	for i, c := range b.Categories {
		categories[i] = CategoryModel{ID: c.ID, Name: c.Name}
	}

	return &BookModel{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		Stock:       b.Stock,
		Type:        string(b.Type),
		FileURL:     b.FileURL,
		IsActive:    b.IsActive,
		Categories:  categories,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	images := make([]book.BookImage, len(model.Images))
	for i, img := range model.Images {
		images[i] = book.BookImage{
			ID:        img.ID,
			BookID:    img.BookID,
			URL:       img.URL,
			IsPrimary: img.IsPrimary,
			CreatedAt: img.CreatedAt,
		}
	}

	categories := make([]book.Category, len(model.Categories))
	for i, c := range model.Categories {
		categories[i] = book.Category{ID: c.ID, Name: c.Name}
	}

	return &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		Author:      model.Author,
		Description: model.Description,
		Price:       model.Price,
		Stock:       model.Stock,
		Type:        book.BookType(model.Type),
		FileURL:     model.FileURL,
		IsActive:    model.IsActive,
		Images:      images,
		Categories:  categories,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
