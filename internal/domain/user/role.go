package user

// Role 用户角色
// 设计说明：
// 1. 定义为封闭类型而非裸字符串，非法取值在边界处被ParseRole拒绝
// 2. 数据库存储字符串值（可读性优先于存储空间）
type Role string

const (
	RoleClient  Role = "CLIENT"  // 普通客户
	RoleManager Role = "MANAGER" // 管理员
)

// IsValid 判断角色是否合法
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleManager:
		return true
	}
	return false
}

// String 实现Stringer接口
func (r Role) String() string {
	return string(r)
}

// ParseRole 从字符串解析角色
// 非法取值返回false（调用方决定拒绝还是回退默认值）
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}
