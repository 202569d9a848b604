package dto

// ListOrdersRequest HTTP订单列表请求（query参数）
// search仅管理端生效：按买家邮箱/姓名模糊搜索
type ListOrdersRequest struct {
	Page   int    `form:"page" binding:"omitempty,min=1" example:"1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100" example:"10"`
	Search string `form:"search" binding:"omitempty,max=100"`
}
