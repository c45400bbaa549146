package public

import (
	"strings"

	"github.com/shopease-next/internal/http/response"
	"github.com/shopease-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitReturnRequest 退货申请请求
type SubmitReturnRequest struct {
	OrderNo string `json:"order_id" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
}

// GetReturnEligibility 查询订单是否可退货
func (h *Handler) GetReturnEligibility(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderNo := strings.TrimSpace(c.Param("order_no"))
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	eligible, err := h.ReturnService.CheckEligibility(uid, orderNo)
	if err != nil {
		respondWithMappedError(c, err, returnErrorRules, response.CodeInternal, "error.return_check_failed")
		return
	}

	response.Success(c, gin.H{"eligible": eligible})
}

// SubmitReturn 提交退货申请
func (h *Handler) SubmitReturn(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req SubmitReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	request, err := h.ReturnService.Submit(service.SubmitReturnInput{
		UserID:  uid,
		OrderNo: req.OrderNo,
		Reason:  req.Reason,
	})
	if err != nil {
		respondWithMappedError(c, err, returnErrorRules, response.CodeInternal, "error.return_submit_failed")
		return
	}

	response.Success(c, gin.H{"return": request})
}

// ListReturns 获取当前用户退货申请列表
func (h *Handler) ListReturns(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	requests, err := h.ReturnService.ListByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.return_fetch_failed", err)
		return
	}

	response.Success(c, gin.H{"returns": requests})
}
