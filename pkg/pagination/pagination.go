// Package pagination 提供分页结果封装与页码链接窗口计算
//
// 核心算法：页码链接窗口（Page-Link Window）
// 1. 始终包含第1页和最后一页
// 2. 包含当前页前后各(windowSize-1)/2页
// 3. 窗口与边界之间的间隔超过1页时插入省略号
// 4. 间隔恰好为1页时直接显示该页码（省略号跳过1页没有意义）
//
// 设计说明：
// 1. 纯函数：相同输入永远产生相同输出，不做任何I/O
// 2. 页码越界不报错而是钳制到[1, totalPages]（用户翻到不存在的页时静默纠正）
// 3. totalRecords为0时totalPages=0、currentPage=1、无页码链接
package pagination

import (
	"reflect"
	"strconv"

	apperrors "github.com/libreria/bookshop/pkg/errors"
)

// DefaultWindowSize 默认页码窗口大小（当前页前后各2页）
const DefaultWindowSize = 5

// 参数校验错误
var (
	ErrInvalidTotal      = apperrors.New(apperrors.ErrCodeInvalidParams, "总记录数不能为负数")
	ErrInvalidLimit      = apperrors.New(apperrors.ErrCodeInvalidParams, "每页数量必须大于0")
	ErrInvalidPage       = apperrors.New(apperrors.ErrCodeInvalidParams, "页码必须大于0")
	ErrInvalidWindowSize = apperrors.New(apperrors.ErrCodeInvalidParams, "窗口大小必须为正奇数")
	ErrInvalidResults    = apperrors.New(apperrors.ErrCodeInvalidParams, "结果集必须为列表")
)

// PageLink 页码链接项：具体页码或省略号
// JSON序列化为数字或字符串"..."，与前端约定的异构数组格式一致
type PageLink struct {
	Page     int  // 页码（Ellipsis为true时无意义）
	Ellipsis bool // 是否为省略号占位
}

// MarshalJSON 实现json.Marshaler
func (l PageLink) MarshalJSON() ([]byte, error) {
	if l.Ellipsis {
		return []byte(`"..."`), nil
	}
	return []byte(strconv.Itoa(l.Page)), nil
}

// String 实现Stringer接口（方便测试与日志输出）
func (l PageLink) String() string {
	if l.Ellipsis {
		return "..."
	}
	return strconv.Itoa(l.Page)
}

// PageInfo 分页结果
type PageInfo struct {
	Results           interface{} `json:"results"`           // 当前页数据列表
	TotalRecords      int64       `json:"totalRecords"`      // 总记录数
	TotalPages        int         `json:"totalPages"`        // 总页数
	CurrentPage       int         `json:"currentPage"`       // 当前页（钳制后）
	HasPreviousPage   bool        `json:"hasPreviousPage"`   // 是否有上一页
	HasNextPage       bool        `json:"hasNextPage"`       // 是否有下一页
	PreviousPage      *int        `json:"previousPage"`      // 上一页页码（无则为null）
	NextPage          *int        `json:"nextPage"`          // 下一页页码（无则为null）
	HasEllipsisBefore bool        `json:"hasEllipsisBefore"` // 窗口前是否有省略号
	HasEllipsisAfter  bool        `json:"hasEllipsisAfter"`  // 窗口后是否有省略号
	PageLinks         []PageLink  `json:"pageLinks"`         // 页码链接窗口
}

// Paginate 使用默认窗口大小计算分页结果
func Paginate(results interface{}, totalRecords int64, limit, page int) (*PageInfo, error) {
	return PaginateWindow(results, totalRecords, limit, page, DefaultWindowSize)
}

// PaginateWindow 计算分页结果
// 参数：
// - results: 当前页数据（必须是切片，与分页元数据一起透传给调用方）
// - totalRecords: 满足查询条件的总记录数
// - limit: 每页数量（>0）
// - page: 请求的页码（>0，越界会被钳制而不是拒绝）
// - windowSize: 页码窗口大小（正奇数，当前页前后各(windowSize-1)/2页）
func PaginateWindow(results interface{}, totalRecords int64, limit, page, windowSize int) (*PageInfo, error) {
	// 1. 防御性参数校验
	if results != nil {
		kind := reflect.ValueOf(results).Kind()
		if kind != reflect.Slice && kind != reflect.Array {
			return nil, ErrInvalidResults
		}
	}
	if totalRecords < 0 {
		return nil, ErrInvalidTotal
	}
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	if page < 1 {
		return nil, ErrInvalidPage
	}
	if windowSize < 1 || windowSize%2 == 0 {
		return nil, ErrInvalidWindowSize
	}

	// 2. 总页数（向上取整）
	totalPages := int((totalRecords + int64(limit) - 1) / int64(limit))

	// 3. 当前页钳制到[1, totalPages]
	// 没有数据时totalPages=0，当前页落在1（表示"第一页，空列表"）
	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}
	if totalPages == 0 {
		currentPage = 1
	}

	hasPreviousPage := currentPage > 1
	hasNextPage := currentPage < totalPages

	var previousPage, nextPage *int
	if hasPreviousPage {
		p := currentPage - 1
		previousPage = &p
	}
	if hasNextPage {
		n := currentPage + 1
		nextPage = &n
	}

	links, before, after := buildPageLinks(totalPages, currentPage, windowSize)

	return &PageInfo{
		Results:           results,
		TotalRecords:      totalRecords,
		TotalPages:        totalPages,
		CurrentPage:       currentPage,
		HasPreviousPage:   hasPreviousPage,
		HasNextPage:       hasNextPage,
		PreviousPage:      previousPage,
		NextPage:          nextPage,
		HasEllipsisBefore: before,
		HasEllipsisAfter:  after,
		PageLinks:         links,
	}, nil
}

// buildPageLinks 构造页码链接窗口
// 不变式：
// - 永远不出现相邻的两个省略号
// - 省略号永远不会只跳过1页（此时显示页码本身）
// - 首尾永远是真实页码（第1页和最后一页）
func buildPageLinks(totalPages, currentPage, windowSize int) ([]PageLink, bool, bool) {
	if totalPages == 0 {
		return []PageLink{}, false, false
	}
	if totalPages == 1 {
		return []PageLink{{Page: 1}}, false, false
	}

	half := (windowSize - 1) / 2

	// 窗口边界（不含首尾两个固定页）
	windowStart := currentPage - half
	if windowStart < 2 {
		windowStart = 2
	}
	windowEnd := currentPage + half
	if windowEnd > totalPages-1 {
		windowEnd = totalPages - 1
	}

	// 左右间隔中被跳过的页数
	skippedBefore := windowStart - 2           // 页码2..windowStart-1
	skippedAfter := totalPages - 1 - windowEnd // 页码windowEnd+1..totalPages-1

	// 间隔恰好1页时并入窗口（省略号不允许只跳1页）
	if skippedBefore == 1 {
		windowStart--
		skippedBefore = 0
	}
	if skippedAfter == 1 {
		windowEnd++
		skippedAfter = 0
	}

	hasEllipsisBefore := skippedBefore > 1
	hasEllipsisAfter := skippedAfter > 1

	links := make([]PageLink, 0, windowEnd-windowStart+5)
	links = append(links, PageLink{Page: 1})
	if hasEllipsisBefore {
		links = append(links, PageLink{Ellipsis: true})
	}
	for i := windowStart; i <= windowEnd; i++ {
		links = append(links, PageLink{Page: i})
	}
	if hasEllipsisAfter {
		links = append(links, PageLink{Ellipsis: true})
	}
	links = append(links, PageLink{Page: totalPages})

	return links, hasEllipsisBefore, hasEllipsisAfter
}
