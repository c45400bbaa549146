package admin

import (
	"strconv"
	"strings"

	"github.com/shopease-next/internal/http/response"
	"github.com/shopease-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminListUsers 管理端用户列表，支持按昵称或邮箱模糊搜索
func (h *Handler) AdminListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	users, total, err := h.UserService.Search(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("search")),
		Role:     strings.TrimSpace(c.Query("role")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_list_failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"users": users}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}
