package dto

// CreateBookRequest HTTP上架请求（仅MANAGER）
type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,max=200" example:"Go语言实战"`
	Author      string `json:"author" binding:"required,max=100" example:"威廉·肯尼迪"`
	Description string `json:"description" binding:"max=5000"`
	Price       int64  `json:"price" binding:"required,min=1,max=99999999" example:"5900"` // 价格(分)
	Stock       int    `json:"stock" binding:"min=0" example:"100"`
	Type        string `json:"type" binding:"required,oneof=PHYSICAL DIGITAL" example:"PHYSICAL"`
	CategoryIDs []uint `json:"category_ids" binding:"omitempty,dive,min=1"`
}

// UpdateBookRequest HTTP修改请求（仅MANAGER）
// 零值语义：省略的字段不修改
type UpdateBookRequest struct {
	Title       string `json:"title" binding:"omitempty,max=200"`
	Author      string `json:"author" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	Price       int64  `json:"price" binding:"omitempty,min=1,max=99999999"`
	Stock       *int   `json:"stock" binding:"omitempty,min=0"` // 指针区分"未传"与"改为0"
}

// ListBooksRequest HTTP图书列表请求（query参数）
type ListBooksRequest struct {
	Page   int    `form:"page" binding:"omitempty,min=1" example:"1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100" example:"10"`
	Search string `form:"search" binding:"omitempty,max=100" example:"Go"`
}

// UploadFileRequest 文件上传的表单字段（multipart）
// 文件本体通过form字段"file"上传
type UploadFileRequest struct {
	FileType string `form:"file_type" binding:"required,oneof=image pdf" example:"image"`
}
