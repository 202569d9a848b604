package dto

// SignupRequest HTTP层注册请求
// 说明：HTTP层的DTO，包含参数验证tag
// 密码强度（必须含字母和数字）在领域服务校验，这里只管长度
type SignupRequest struct {
	Email     string `json:"email" binding:"required,email" example:"reader@example.com"`
	Password  string `json:"password" binding:"required,min=8,max=20"`
	FirstName string `json:"first_name" binding:"required,min=1,max=50" example:"三"`
	LastName  string `json:"last_name" binding:"required,min=1,max=50" example:"张"`
}

// LoginRequest HTTP层登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserInfo 用户信息（不包含密码）
type UserInfo struct {
	ID        uint   `json:"id" example:"1"`
	Email     string `json:"email" example:"reader@example.com"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role" example:"CLIENT"`
}

// SignupResponse HTTP注册响应
// 注册成功直接返回Access Token，省去二次登录
type SignupResponse struct {
	Message     string   `json:"message" example:"User created successfully"`
	User        UserInfo `json:"user"`
	AccessToken string   `json:"access_token"`
	ExpiresIn   int64    `json:"expires_in" example:"7200"`
}

// LoginResponse HTTP登录响应
type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in" example:"7200"`
}
