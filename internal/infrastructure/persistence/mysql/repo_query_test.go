package mysql

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/libreria/bookshop/internal/domain/book"
)

// newDryRunDB 创建DryRun模式的GORM实例（只生成SQL，不执行）
// sql.Open是惰性的，配合SkipInitializeWithVersion与DisableAutomaticPing，
// 整个测试不需要真实的MySQL连接
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("mysql", "test:test@tcp(127.0.0.1:3306)/bookshop_test?parseTime=true")
	require.NoError(t, err)

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

// sqlCapture 通过自定义Callback捕获生成的SQL与参数
// Execute结束后Statement会被重置，必须在Callback内拷贝
type sqlCapture struct {
	stmts []string
	vars  [][]interface{}
}

func (c *sqlCapture) hook() func(*gorm.DB) {
	return func(d *gorm.DB) {
		c.stmts = append(c.stmts, d.Statement.SQL.String())
		vars := make([]interface{}, len(d.Statement.Vars))
		copy(vars, d.Statement.Vars)
		c.vars = append(c.vars, vars)
	}
}

func registerQueryCapture(t *testing.T, db *gorm.DB, capture *sqlCapture) {
	t.Helper()
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture.hook()))
}

// -----------------------------------------------
// 图书列表关键词搜索
// -----------------------------------------------

// 关键词需同时匹配标题、作者、描述三个字段（OR连接），
// 只出现在描述中的关键词也必须能命中
func TestBookRepositoryList_KeywordSearchesDescription(t *testing.T) {
	db := newDryRunDB(t)
	capture := &sqlCapture{}
	registerQueryCapture(t, db, capture)

	repo := NewBookRepository(db)
	filter := book.NewSearchFilter("边城", 0, true, 1, 10)

	_, _, err := repo.List(context.Background(), filter)
	require.NoError(t, err)
	require.NotEmpty(t, capture.stmts)

	// 最后一条语句是分页投影查询
	last := len(capture.stmts) - 1
	assert.Contains(t, capture.stmts[last],
		"books.title LIKE ? OR books.author LIKE ? OR books.description LIKE ?")

	// 三个字段各绑定一次模糊模式
	hits := 0
	for _, v := range capture.vars[last] {
		if v == "%边城%" {
			hits++
		}
	}
	assert.Equal(t, 3, hits)
}

func TestBookRepositoryList_NoKeywordNoLikePredicate(t *testing.T) {
	db := newDryRunDB(t)
	capture := &sqlCapture{}
	registerQueryCapture(t, db, capture)

	repo := NewBookRepository(db)
	filter := book.NewSearchFilter("", 0, true, 1, 10)

	_, _, err := repo.List(context.Background(), filter)
	require.NoError(t, err)
	require.NotEmpty(t, capture.stmts)

	last := len(capture.stmts) - 1
	assert.NotContains(t, capture.stmts[last], "LIKE")
	assert.Contains(t, capture.stmts[last], "is_active")
}

// -----------------------------------------------
// 购物车仓储的事务传递
// -----------------------------------------------

// 下单事务内读购物车必须走context中的事务DB：
// 事务DB（tx）上注册捕获Callback，base上不注册——
// 语句被捕获即证明查询运行在事务连接上
func TestCartRepositoryListByUser_RunsOnTxFromContext(t *testing.T) {
	base := newDryRunDB(t)
	tx := newDryRunDB(t)

	capture := &sqlCapture{}
	registerQueryCapture(t, tx, capture)

	repo := NewCartRepository(base)
	txCtx := context.WithValue(context.Background(), txKey{}, tx)

	_, err := repo.ListByUser(txCtx, 7)
	require.NoError(t, err)

	require.Len(t, capture.stmts, 1)
	assert.Contains(t, capture.stmts[0], "cart_items")
	assert.Contains(t, capture.vars[0], uint(7))
}

func TestCartRepositoryRemove_RunsOnTxFromContext(t *testing.T) {
	base := newDryRunDB(t)
	tx := newDryRunDB(t)

	capture := &sqlCapture{}
	require.NoError(t, tx.Callback().Delete().After("gorm:delete").Register("test:capture_delete", capture.hook()))

	repo := NewCartRepository(base)
	txCtx := context.WithValue(context.Background(), txKey{}, tx)

	err := repo.Remove(txCtx, 7, 3)
	require.NoError(t, err)

	require.Len(t, capture.stmts, 1)
	assert.Contains(t, capture.stmts[0], "cart_items")
}

// 不在事务内时回退到基础连接
func TestCartRepositoryListByUser_FallsBackToBaseDB(t *testing.T) {
	base := newDryRunDB(t)

	capture := &sqlCapture{}
	registerQueryCapture(t, base, capture)

	repo := NewCartRepository(base)

	_, err := repo.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, capture.stmts, 1)
}
