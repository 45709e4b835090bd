package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/it22117250/ITPM-Project/services"
)

type ForecastController struct {
	forecastService *services.ForecastService
}

func NewForecastController(forecastService *services.ForecastService) *ForecastController {
	return &ForecastController{forecastService: forecastService}
}

// GetForecast returns a demand prediction for a product and month
func (fc *ForecastController) GetForecast(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("productId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Month is required"})
		return
	}

	forecast, svcErr := fc.forecastService.GetForecast(ctx.Request.Context(), productID, month)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, forecast)
}
