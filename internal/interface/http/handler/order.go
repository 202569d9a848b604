package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/libreria/bookshop/internal/application/order"
	"github.com/libreria/bookshop/internal/interface/http/dto"
	"github.com/libreria/bookshop/internal/interface/http/middleware"
	"github.com/libreria/bookshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createOrderUseCase    *apporder.CreateOrderUseCase
	listUserOrdersUseCase *apporder.ListUserOrdersUseCase
	listAllOrdersUseCase  *apporder.ListAllOrdersUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createOrderUseCase *apporder.CreateOrderUseCase,
	listUserOrdersUseCase *apporder.ListUserOrdersUseCase,
	listAllOrdersUseCase *apporder.ListAllOrdersUseCase,
) *OrderHandler {
	return &OrderHandler{
		createOrderUseCase:    createOrderUseCase,
		listUserOrdersUseCase: listUserOrdersUseCase,
		listAllOrdersUseCase:  listAllOrdersUseCase,
	}
}

// Create 创建订单
// @Summary      创建订单
// @Description  将当前购物车转为订单（价格快照），成功后清空购物车；订单、明细、清空购物车在同一事务内
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} response.Response{data=apporder.CreateOrderResponse} "下单成功"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "购物车为空"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	result, err := h.createOrderUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListMine 我的订单列表
// @Summary      我的订单
// @Description  分页查询当前用户的订单（按创建时间倒序）
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        limit query int false "每页数量"
// @Success      200 {object} response.Response{data=pagination.PageInfo} "查询成功"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	userID := middleware.MustGetUserID(c)

	info, err := h.listUserOrdersUseCase.Execute(c.Request.Context(), userID, req.Page, req.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, info)
}

// ListAll 全部订单列表（管理端）
// @Summary      全部订单
// @Description  分页查询全部订单（仅MANAGER），支持按买家邮箱/姓名模糊搜索
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        limit query int false "每页数量"
// @Param        search query string false "买家搜索关键词"
// @Success      200 {object} response.Response{data=pagination.PageInfo} "查询成功"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "无权限"
// @Router       /api/v1/orders/manager [get]
func (h *OrderHandler) ListAll(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	info, err := h.listAllOrdersUseCase.Execute(c.Request.Context(), req.Search, req.Page, req.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, info)
}
