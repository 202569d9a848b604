package user

import (
	"context"
)

// Repository 用户仓储接口
// 接口定义在domain层，MySQL实现在infrastructure层（依赖倒置），
// 只声明注册/登录/认证实际需要的方法
type Repository interface {
	// Create 创建用户
	// 邮箱已存在时返回errors.ErrEmailDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户
	// 不存在时返回errors.ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 根据邮箱查找用户（登录时查询）
	// 不存在时返回errors.ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)
}
