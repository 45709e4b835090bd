package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/it22117250/ITPM-Project/services"
)

type ProductController struct {
	productService *services.ProductService
	cache          *CacheManager
}

func NewProductController(productService *services.ProductService, cache *CacheManager) *ProductController {
	return &ProductController{
		productService: productService,
		cache:          cache,
	}
}

// CreateProduct handles product creation; the slug is assigned server-side.
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var req services.ProductCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := pc.productService.CreateProduct(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	pc.cache.Invalidate(ctx.Request.Context())
	ctx.JSON(http.StatusCreated, product)
}

// GetProducts returns paginated products, served from cache when possible
func (pc *ProductController) GetProducts(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	if cached, ok := pc.cache.GetProductList(ctx.Request.Context(), page, limit); ok {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	result, svcErr := pc.productService.ListProducts(ctx.Request.Context(), page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	pc.cache.SetProductListAsync(page, limit, result)
	ctx.JSON(http.StatusOK, result)
}

// GetProductByID returns a specific product
func (pc *ProductController) GetProductByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	product, svcErr := pc.productService.GetProduct(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// UpdateProduct applies a partial update to a product
func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := pc.productService.UpdateProduct(ctx.Request.Context(), id, updates)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	pc.cache.Invalidate(ctx.Request.Context())
	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product
func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if svcErr := pc.productService.DeleteProduct(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	pc.cache.Invalidate(ctx.Request.Context())
	ctx.Status(http.StatusNoContent)
}
