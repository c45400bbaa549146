package public

import (
	"strconv"

	"github.com/shopease-next/internal/http/response"
	"github.com/shopease-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// UpdateCartQuantityRequest 修改数量请求
type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	summary, err := h.CartService.Summary(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}

	response.Success(c, summary)
}

// AddCartItem 添加商品到购物车
// 同一商品重复添加时累加数量，不新建条目。
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if err := h.CartService.AddLine(service.AddCartLineInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Quantity:  quantity,
	}); err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}

	summary, err := h.CartService.Summary(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, summary)
}

// UpdateCartQuantity 修改购物车条目数量
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	lineKey, ok := parseLineKey(c)
	if !ok {
		return
	}
	var req UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CartService.UpdateQuantity(uid, lineKey, req.Quantity); err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}

	summary, err := h.CartService.Summary(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, summary)
}

// DeleteCartLine 删除购物车条目
func (h *Handler) DeleteCartLine(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	lineKey, ok := parseLineKey(c)
	if !ok {
		return
	}

	if err := h.CartService.RemoveLine(uid, lineKey); err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(uid); err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}

	response.Success(c, gin.H{"cleared": true})
}

func parseLineKey(c *gin.Context) (uint, bool) {
	rawKey := c.Param("line_key")
	lineKey, err := strconv.ParseUint(rawKey, 10, 64)
	if err != nil || lineKey == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_line_not_found", nil)
		return 0, false
	}
	return uint(lineKey), true
}
