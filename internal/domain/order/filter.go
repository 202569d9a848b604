package order

// SearchFilter 管理端订单查询条件
// 设计说明：查询条件显式建模为值对象，由纯构造函数统一做默认值处理
type SearchFilter struct {
	// Search 模糊匹配买家的邮箱、名、姓（大小写不敏感，OR关系）
	// 空串表示不过滤
	Search string
	Page   int
	Limit  int
}

// 分页默认值
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// NewSearchFilter 构造订单查询条件（纯函数）
func NewSearchFilter(search string, page, limit int) SearchFilter {
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
		Search: search,
		Page:   page,
		Limit:  limit,
	}
}

// Offset SQL偏移量
func (f SearchFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
