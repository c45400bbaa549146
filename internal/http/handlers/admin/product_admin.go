package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopease-next/internal/http/response"
	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/repository"
	"github.com/shopease-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Name           string                 `json:"name" binding:"required"`
	Brand          string                 `json:"brand"`
	Category       string                 `json:"category"`
	Price          models.Money           `json:"price"`
	OriginalPrice  *models.Money          `json:"original_price"`
	Discount       int                    `json:"discount"`
	Image          string                 `json:"image"`
	Images         []string               `json:"images"`
	Description    string                 `json:"description"`
	InStock        bool                   `json:"in_stock"`
	Features       []string               `json:"features"`
	Specifications map[string]interface{} `json:"specifications"`
	Tags           []string               `json:"tags"`
}

// AdminListProducts 管理端商品列表
func (h *Handler) AdminListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: strings.TrimSpace(c.Query("category")),
		Brand:    strings.TrimSpace(c.Query("brand")),
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"products": products}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// AdminCreateProduct 创建商品
func (h *Handler) AdminCreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Create(service.CreateProductInput{
		Name:           req.Name,
		Brand:          req.Brand,
		Category:       req.Category,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		Discount:       req.Discount,
		Image:          req.Image,
		Images:         req.Images,
		Description:    req.Description,
		InStock:        req.InStock,
		Features:       req.Features,
		Specifications: req.Specifications,
		Tags:           req.Tags,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(c, response.CodeBadRequest, "error.invalid_input", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_create_failed", err)
		return
	}

	response.Success(c, gin.H{"product": product})
}

// AdminDeleteProduct 删除商品
func (h *Handler) AdminDeleteProduct(c *gin.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.ProductService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_delete_failed", err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
