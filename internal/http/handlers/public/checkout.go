package public

import (
	"github.com/shopease-next/internal/http/response"
	"github.com/shopease-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutAddressRequest 结账地址
type CheckoutAddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// CheckoutRequest 结账请求
// LineKey 非空时只结算该购物车行（单品立即购买），否则结算整个购物车。
type CheckoutRequest struct {
	LineKey       *uint                  `json:"line_key"`
	PaymentMethod string                 `json:"payment_method"`
	Address       CheckoutAddressRequest `json:"address"`
}

// Checkout 提交订单
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.CheckoutService.PlaceOrder(service.PlaceOrderInput{
		UserID:        uid,
		LineKey:       req.LineKey,
		PaymentMethod: req.PaymentMethod,
		Address: service.ShippingAddress{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			Zip:     req.Address.Zip,
			Country: req.Address.Country,
		},
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.checkout_failed")
		return
	}

	response.Success(c, gin.H{"order": order})
}
