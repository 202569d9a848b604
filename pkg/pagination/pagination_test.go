package pagination

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkStrings 把页码链接转成字符串切片，方便断言
func linkStrings(links []PageLink) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.String()
	}
	return out
}

// TestPaginate_EmptyResult 测试无数据时的分页
func TestPaginate_EmptyResult(t *testing.T) {
	info, err := Paginate([]int{}, 0, 10, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, info.TotalPages)
	assert.Equal(t, 1, info.CurrentPage)
	assert.False(t, info.HasPreviousPage)
	assert.False(t, info.HasNextPage)
	assert.Nil(t, info.PreviousPage)
	assert.Nil(t, info.NextPage)
	assert.Empty(t, info.PageLinks)
}

// TestPaginate_EmptyResultAnyPage 无数据时请求任意页码都落在第1页
func TestPaginate_EmptyResultAnyPage(t *testing.T) {
	for _, page := range []int{1, 2, 7, 100} {
		info, err := Paginate([]int{}, 0, 10, page)
		require.NoError(t, err)
		assert.Equal(t, 1, info.CurrentPage, "page=%d", page)
		assert.Empty(t, info.PageLinks)
	}
}

// TestPaginate_PageClamp 越界页码被钳制而不是报错
func TestPaginate_PageClamp(t *testing.T) {
	// 95条记录，每页10条 → 10页
	info, err := Paginate([]int{1, 2, 3}, 95, 10, 99)
	require.NoError(t, err)

	assert.Equal(t, 10, info.TotalPages)
	assert.Equal(t, 10, info.CurrentPage)
	assert.True(t, info.HasPreviousPage)
	assert.False(t, info.HasNextPage)
	require.NotNil(t, info.PreviousPage)
	assert.Equal(t, 9, *info.PreviousPage)
	assert.Nil(t, info.NextPage)
}

// TestPaginate_TotalPagesCeil 总页数向上取整
func TestPaginate_TotalPagesCeil(t *testing.T) {
	cases := []struct {
		name    string
		total   int64
		limit   int
		expects int
	}{
		{"整除", 100, 10, 10},
		{"有余数", 101, 10, 11},
		{"不足一页", 3, 10, 1},
		{"恰好一条", 1, 10, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info, err := Paginate(nil, tc.total, tc.limit, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.expects, info.TotalPages)
		})
	}
}

// TestPaginate_PageLinks 页码窗口与省略号（窗口大小5）
func TestPaginate_PageLinks(t *testing.T) {
	cases := []struct {
		name        string
		totalPages  int64 // 总记录数 = totalPages*10，limit=10
		currentPage int
		expects     []string
	}{
		{"单页", 1, 1, []string{"1"}},
		{"两页", 2, 1, []string{"1", "2"}},
		{"五页全显示", 5, 3, []string{"1", "2", "3", "4", "5"}},
		{"六页全显示", 6, 3, []string{"1", "2", "3", "4", "5", "6"}},
		{"首页_后省略", 10, 1, []string{"1", "2", "3", "...", "10"}},
		{"中间_两侧省略", 10, 6, []string{"1", "...", "4", "5", "6", "7", "8", "9", "10"}},
		{"居中_两侧省略", 20, 10, []string{"1", "...", "8", "9", "10", "11", "12", "...", "20"}},
		{"末页_前省略", 10, 10, []string{"1", "...", "8", "9", "10"}},
		// 间隔恰好1页时显示页码而不是省略号
		{"右侧只跳1页", 8, 4, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"左侧只跳1页", 8, 5, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"两侧各跳1页", 9, 5, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		{"左省略_右跳1页", 12, 9, []string{"1", "...", "7", "8", "9", "10", "11", "12"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info, err := Paginate(nil, tc.totalPages*10, 10, tc.currentPage)
			require.NoError(t, err)
			assert.Equal(t, tc.expects, linkStrings(info.PageLinks))
		})
	}
}

// TestPaginate_WindowInvariants 窗口不变式：穷举校验
// 1. 不出现相邻的两个省略号
// 2. 省略号不会只跳过1页
// 3. 首尾永远是第1页和最后一页
// 4. 相邻页码连续或被省略号分隔
func TestPaginate_WindowInvariants(t *testing.T) {
	for totalPages := 1; totalPages <= 30; totalPages++ {
		for page := 1; page <= totalPages; page++ {
			info, err := Paginate(nil, int64(totalPages*10), 10, page)
			require.NoError(t, err)

			links := info.PageLinks
			require.NotEmpty(t, links)
			assert.Equal(t, 1, links[0].Page, "totalPages=%d page=%d", totalPages, page)
			assert.False(t, links[0].Ellipsis)
			assert.Equal(t, totalPages, links[len(links)-1].Page)
			assert.False(t, links[len(links)-1].Ellipsis)

			for i := 1; i < len(links); i++ {
				prev, cur := links[i-1], links[i]
				if prev.Ellipsis && cur.Ellipsis {
					t.Fatalf("相邻省略号: totalPages=%d page=%d links=%v", totalPages, page, linkStrings(links))
				}
				if !prev.Ellipsis && !cur.Ellipsis && cur.Page-prev.Page == 2 {
					t.Fatalf("跳过了恰好1页: totalPages=%d page=%d links=%v", totalPages, page, linkStrings(links))
				}
				// 省略号两侧的页码间隔必须>2（至少跳过2页）
				if cur.Ellipsis && i+1 < len(links) {
					gap := links[i+1].Page - prev.Page
					assert.Greater(t, gap, 2, "totalPages=%d page=%d links=%v", totalPages, page, linkStrings(links))
				}
			}
		}
	}
}

// TestPaginate_InvalidInputs 防御性参数校验
func TestPaginate_InvalidInputs(t *testing.T) {
	_, err := Paginate(nil, -1, 10, 1)
	assert.ErrorIs(t, err, ErrInvalidTotal)

	_, err = Paginate(nil, 10, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = Paginate(nil, 10, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = PaginateWindow(nil, 10, 10, 1, 4)
	assert.ErrorIs(t, err, ErrInvalidWindowSize)

	_, err = PaginateWindow(nil, 10, 10, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidWindowSize)

	// 结果集必须是切片
	_, err = Paginate("not-a-slice", 10, 10, 1)
	assert.ErrorIs(t, err, ErrInvalidResults)

	_, err = Paginate(42, 10, 10, 1)
	assert.ErrorIs(t, err, ErrInvalidResults)
}

// TestPaginate_Deterministic 纯函数：相同输入产生相同输出
func TestPaginate_Deterministic(t *testing.T) {
	first, err := Paginate([]string{"a", "b"}, 123, 7, 5)
	require.NoError(t, err)
	second, err := Paginate([]string{"a", "b"}, 123, 7, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestPageLink_MarshalJSON 页码链接序列化为数字或"..."
func TestPageLink_MarshalJSON(t *testing.T) {
	info, err := Paginate(nil, 100, 10, 6)
	require.NoError(t, err)

	data, err := json.Marshal(info.PageLinks)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, "...", 4, 5, 6, 7, 8, 9, 10]`, string(data))
}

// TestPaginate_LargerWindow 自定义窗口大小
func TestPaginate_LargerWindow(t *testing.T) {
	// 窗口7：当前页前后各3页
	info, err := PaginateWindow(nil, 200, 10, 10, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "...", "7", "8", "9", "10", "11", "12", "13", "...", "20"},
		linkStrings(info.PageLinks))
}
