package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/libreria/bookshop/internal/application/book"
	"github.com/libreria/bookshop/internal/interface/http/dto"
	"github.com/libreria/bookshop/internal/interface/http/middleware"
	apperrors "github.com/libreria/bookshop/pkg/errors"
	"github.com/libreria/bookshop/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createBookUseCase *appbook.CreateBookUseCase
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
	toggleLikeUseCase *appbook.ToggleLikeUseCase
	uploadFileUseCase *appbook.UploadFileUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBookUseCase *appbook.CreateBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
	toggleLikeUseCase *appbook.ToggleLikeUseCase,
	uploadFileUseCase *appbook.UploadFileUseCase,
) *BookHandler {
	return &BookHandler{
		createBookUseCase: createBookUseCase,
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
		toggleLikeUseCase: toggleLikeUseCase,
		uploadFileUseCase: uploadFileUseCase,
	}
}

// List 图书列表
// @Summary      图书列表
// @Description  分页查询上架图书，支持按标题/作者/描述关键词搜索
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码(默认1)"
// @Param        limit query int false "每页数量(默认10，最大100)"
// @Param        search query string false "搜索关键词"
// @Success      200 {object} response.Response{data=pagination.PageInfo} "查询成功"
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	info, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:   req.Page,
		Limit:  req.Limit,
		Search: req.Search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, info)
}

// ListByCategory 按分类查询图书列表
// @Summary      分类图书列表
// @Description  分页查询指定分类下的上架图书
// @Tags         图书
// @Produce      json
// @Param        categoryId path int true "分类ID"
// @Param        page query int false "页码"
// @Param        limit query int false "每页数量"
// @Success      200 {object} response.Response{data=pagination.PageInfo} "查询成功"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/books/category/{categoryId} [get]
func (h *BookHandler) ListByCategory(c *gin.Context) {
	categoryID, err := parseUintParam(c, "categoryId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	info, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:       req.Page,
		Limit:      req.Limit,
		Search:     req.Search,
		CategoryID: categoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, info)
}

// GetByID 图书详情
// @Summary      图书详情
// @Description  查询图书完整信息：描述、主图、分类、点赞数
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookDetail} "查询成功"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetByID(c *gin.Context) {
	bookID, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	detail, err := h.getBookUseCase.Execute(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, detail)
}

// Create 图书上架
// @Summary      图书上架
// @Description  创建新图书（仅MANAGER）
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=appbook.BookDetail} "上架成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	detail, err := h.createBookUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Type:        req.Type,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, detail)
}

// Update 图书修改
// @Summary      图书修改
// @Description  部分更新图书信息（仅MANAGER），省略的字段不修改
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "修改信息"
// @Success      200 {object} response.Response{data=appbook.BookDetail} "修改成功"
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	bookID, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	// stock指针区分"未传"(不修改，内部用-1表示)与"改为0"
	stock := -1
	if req.Stock != nil {
		stock = *req.Stock
	}

	detail, err := h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		BookID:      bookID,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		Stock:       stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, detail)
}

// Delete 图书删除
// @Summary      图书删除
// @Description  软删除图书（仅MANAGER）
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	bookID, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), bookID); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, "删除成功")
}

// ToggleLike 点赞切换
// @Summary      点赞/取消点赞
// @Description  已点赞则取消，未点赞则新增
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.ToggleLikeResponse} "切换成功"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id}/toggle-like [post]
func (h *BookHandler) ToggleLike(c *gin.Context) {
	bookID, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.toggleLikeUseCase.Execute(c.Request.Context(), userID, bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Upload 图书文件上传
// @Summary      图书文件上传
// @Description  上传图书图片或电子书PDF（仅MANAGER）；file_type=image追加图片，file_type=pdf设置电子书文件
// @Tags         图书
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        file_type formData string true "文件用途" Enums(image, pdf)
// @Param        file formData file true "文件"
// @Success      200 {object} response.Response{data=appbook.UploadFileResponse} "上传成功"
// @Failure      400 {object} response.Response "文件类型错误"
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id}/upload [post]
func (h *BookHandler) Upload(c *gin.Context) {
	bookID, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UploadFileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "缺少上传文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperrors.Wrap(err, "读取上传文件失败"))
		return
	}
	defer file.Close()

	result, err := h.uploadFileUseCase.Execute(c.Request.Context(), appbook.UploadFileRequest{
		BookID:      bookID,
		FileType:    req.FileType,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// parseUintParam 解析路径参数为uint
func parseUintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || value == 0 {
		return 0, apperrors.New(apperrors.ErrCodeInvalidParams, "路径参数"+name+"必须为正整数")
	}
	return uint(value), nil
}
