package public

import (
	"github.com/shopease-next/internal/http/response"
	"github.com/shopease-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitInquiryRequest 联系留言请求
type SubmitInquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

var inquiryErrorRules = []mappedHandlerError{
	{target: service.ErrEmailInvalid, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.invalid_input"},
}

// SubmitInquiry 提交联系留言，游客与登录用户均可
func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	// 已登录时关联用户，未登录按游客处理
	var uid uint
	if value, exists := c.Get("user_id"); exists {
		if id, ok := value.(uint); ok {
			uid = id
		}
	}

	inquiry, err := h.InquiryService.Submit(service.SubmitInquiryInput{
		UserID:  uid,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		respondWithMappedError(c, err, inquiryErrorRules, response.CodeInternal, "error.inquiry_submit_failed")
		return
	}

	response.Success(c, gin.H{"inquiry": inquiry})
}
