package admin

import (
	"strconv"
	"strings"

	"github.com/shopease-next/internal/http/response"
	"github.com/shopease-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminListInquiries 管理端联系留言列表
func (h *Handler) AdminListInquiries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	inquiries, total, err := h.InquiryService.List(repository.InquiryListFilter{
		Page:     page,
		PageSize: pageSize,
		Email:    strings.TrimSpace(c.Query("email")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.inquiry_list_failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"inquiries": inquiries}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}
