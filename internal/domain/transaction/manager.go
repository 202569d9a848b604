// Package transaction 定义事务管理抽象
package transaction

import (
	"context"
)

// Manager 事务管理器接口
// 设计说明：
// 1. 接口定义在domain层，具体实现（GORM事务）在infrastructure层（依赖倒置）
// 2. fn内通过ctx取到的Repository操作都在同一事务中执行
// 3. fn返回error时整个事务回滚，返回nil时提交
// 4. 便于单元测试：Mock实现直接调用fn即可
type Manager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
