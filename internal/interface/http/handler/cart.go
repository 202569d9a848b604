package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/libreria/bookshop/internal/application/cart"
	"github.com/libreria/bookshop/internal/interface/http/dto"
	"github.com/libreria/bookshop/internal/interface/http/middleware"
	"github.com/libreria/bookshop/pkg/response"
)

// CartHandler 购物车HTTP处理器
type CartHandler struct {
	addToCartUseCase      *appcart.AddToCartUseCase
	getCartUseCase        *appcart.GetCartUseCase
	removeFromCartUseCase *appcart.RemoveFromCartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	addToCartUseCase *appcart.AddToCartUseCase,
	getCartUseCase *appcart.GetCartUseCase,
	removeFromCartUseCase *appcart.RemoveFromCartUseCase,
) *CartHandler {
	return &CartHandler{
		addToCartUseCase:      addToCartUseCase,
		getCartUseCase:        getCartUseCase,
		removeFromCartUseCase: removeFromCartUseCase,
	}
}

// Add 加入购物车
// @Summary      加入购物车
// @Description  将图书加入购物车，重复加购数量累加；实体书加购时校验库存
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddToCartRequest true "加购信息"
// @Success      200 {object} response.Response "加购成功"
// @Failure      400 {object} response.Response "参数错误或库存不足"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	userID := middleware.MustGetUserID(c)

	err := h.addToCartUseCase.Execute(c.Request.Context(), appcart.AddToCartRequest{
		UserID:   userID,
		BookID:   req.BookID,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, "已加入购物车")
}

// Get 查询购物车
// @Summary      查询购物车
// @Description  返回购物车明细（图书当前价格）、总件数与总金额
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appcart.GetCartResponse} "查询成功"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "购物车为空"
// @Router       /api/v1/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	result, err := h.getCartUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Remove 移除购物车条目
// @Summary      移除购物车条目
// @Description  从购物车中删除指定图书
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "图书ID"
// @Success      200 {object} response.Response "移除成功"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/cart/{bookId} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	bookID, err := parseUintParam(c, "bookId")
	if err != nil {
		response.Error(c, err)
		return
	}

	userID := middleware.MustGetUserID(c)

	if err := h.removeFromCartUseCase.Execute(c.Request.Context(), userID, bookID); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, "已移除")
}
