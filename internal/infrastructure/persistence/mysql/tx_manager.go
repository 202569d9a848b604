package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/libreria/bookshop/internal/domain/transaction"
)

// txKey 事务在context中的键（自定义类型避免与其他包冲突）
type txKey struct{}

// TxManager 事务管理器
// 设计说明：
// 1. 封装GORM的Transaction方法，实现domain层的transaction.Manager接口
// 2. 通过context传递事务DB（避免全局变量）
// 3. 支持嵌套事务（GORM自动使用Savepoint）
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) transaction.Manager {
	return &TxManager{db: db}
}

// WithTx 执行事务
// 1. fn函数内的所有Repository操作都会在同一事务中执行
// 2. fn返回error时自动ROLLBACK，返回nil时自动COMMIT
//
// 使用示例：
//
//	err := txm.WithTx(ctx, func(ctx context.Context) error {
//	    b, err := bookRepo.LockByID(ctx, bookID) // SELECT FOR UPDATE
//	    if err != nil {
//	        return err
//	    }
//	    return cartRepo.Upsert(ctx, item) // 同一事务
//	})
func (m *TxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入Context，Repository的getDB会从context提取
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}
