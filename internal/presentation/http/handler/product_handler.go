package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kasirhub/kasir-pos/internal/application/service"
	"github.com/kasirhub/kasir-pos/internal/domain/repository"
	"github.com/kasirhub/kasir-pos/internal/presentation/http/dto/request"
	"github.com/kasirhub/kasir-pos/internal/presentation/http/dto/response"
	"github.com/kasirhub/kasir-pos/pkg/pagination"
	"github.com/kasirhub/kasir-pos/pkg/validator"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	pg := pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage}
	pg.Validate()
	params := &repository.ProductFilterParams{
		Search:     filter.Search,
		CategoryID: filter.CategoryID,
		Pagination: pg,
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}
	if fieldErrors := validator.ValidateStruct(&req); fieldErrors != nil {
		response.ValidationError(c, fieldErrors)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.ProductInput{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Code:       req.Code,
		Price:      req.Price,
		Discount:   req.Discount,
		Stock:      req.Stock,
		Unit:       req.Unit,
		Fractional: req.Fractional,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created successfully", product)
}

// Get retrieves a product by ID
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// GetByCode looks a product up by its barcode
func (h *ProductHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "Product code is required")
		return
	}

	product, err := h.productService.GetProductByCode(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// Update handles product updates
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}
	if fieldErrors := validator.ValidateStruct(&req); fieldErrors != nil {
		response.ValidationError(c, fieldErrors)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &service.ProductInput{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Code:       req.Code,
		Price:      req.Price,
		Discount:   req.Discount,
		Stock:      req.Stock,
		Unit:       req.Unit,
		Fractional: req.Fractional,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated successfully", product)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListCategories lists all categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.productService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory handles category creation
func (h *ProductHandler) CreateCategory(c *gin.Context) {
	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	category, err := h.productService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category created successfully", category)
}

// DeleteCategory removes a category
func (h *ProductHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.productService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
