package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/it22117250/ITPM-Project/services"
)

type SupplierController struct {
	supplierService *services.SupplierService
}

func NewSupplierController(supplierService *services.SupplierService) *SupplierController {
	return &SupplierController{supplierService: supplierService}
}

// CreateSupplier handles supplier creation; the slug is assigned server-side.
func (sc *SupplierController) CreateSupplier(ctx *gin.Context) {
	var req services.SupplierCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	supplier, svcErr := sc.supplierService.CreateSupplier(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, supplier)
}

func (sc *SupplierController) GetSuppliers(ctx *gin.Context) {
	suppliers, svcErr := sc.supplierService.GetSuppliers(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, suppliers)
}

func (sc *SupplierController) GetSupplierByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	supplier, svcErr := sc.supplierService.GetSupplierByID(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, supplier)
}

func (sc *SupplierController) UpdateSupplier(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	supplier, svcErr := sc.supplierService.UpdateSupplier(ctx.Request.Context(), id, updates)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, supplier)
}

func (sc *SupplierController) DeleteSupplier(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if svcErr := sc.supplierService.DeleteSupplier(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.Status(http.StatusNoContent)
}
