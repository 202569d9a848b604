package book

// SearchFilter 图书列表查询条件
// 设计说明：
// 1. 查询条件显式建模为值对象，由纯构造函数统一做默认值与边界处理
// 2. Repository只负责把SearchFilter翻译成SQL，不再各处散落默认值逻辑
type SearchFilter struct {
	Keyword    string // 搜索关键词（匹配标题、作者、描述，大小写不敏感）
	CategoryID uint   // 分类ID（0表示不按分类过滤）
	OnlyActive bool   // 是否只返回上架图书（客户端列表为true，管理端可为false）
	Page       int    // 页码（从1开始）
	Limit      int    // 每页数量
}

// 分页默认值
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// NewSearchFilter 构造图书查询条件（纯函数）
// 边界处理：
// - page<1回退为1
// - limit<1回退为10，limit>100钳制为100
func NewSearchFilter(keyword string, categoryID uint, onlyActive bool, page, limit int) SearchFilter {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return SearchFilter{
		Keyword:    keyword,
		CategoryID: categoryID,
		OnlyActive: onlyActive,
		Page:       page,
		Limit:      limit,
	}
}

// Offset SQL偏移量
func (f SearchFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
