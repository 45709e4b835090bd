package services

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/it22117250/ITPM-Project/models"
	"github.com/it22117250/ITPM-Project/repository"
)

type ForecastResponse struct {
	Product           *models.Product        `json:"product"`
	Month             int                    `json:"month"`
	PredictedQuantity float64                `json:"predicted_quantity"`
	ModelMetrics      map[string]interface{} `json:"model_metrics,omitempty"`
	TrainingDate      string                 `json:"training_date,omitempty"`
}

type ForecastService struct {
	store   repository.Store
	baseURL string
}

func NewForecastService(store repository.Store, baseURL string) *ForecastService {
	return &ForecastService{store: store, baseURL: baseURL}
}

// GetForecast predicts next demand for a product from its current stock
// level and the requested month.
func (s *ForecastService) GetForecast(ctx context.Context, productID uuid.UUID, month int) (*ForecastResponse, *ServiceError) {
	if month < 1 || month > 12 {
		return nil, newServiceError(http.StatusBadRequest, "Month must be between 1 and 12")
	}

	product, err := s.store.Products().FindByID(ctx, productID)
	if err != nil {
		return nil, storeError(err, "Product not found")
	}

	pred, err := FetchPrediction(ctx, s.baseURL, PredictionRequest{
		CurrentQuantity: float64(product.Quantity),
		Month:           month,
	})
	if err != nil {
		log.Printf("[ForecastService] Prediction failed for product %s: %v", productID, err)
		return nil, newServiceError(http.StatusBadGateway, "Failed to fetch prediction")
	}

	return &ForecastResponse{
		Product:           product,
		Month:             month,
		PredictedQuantity: pred.PredictedQuantity,
		ModelMetrics:      pred.ModelMetrics,
		TrainingDate:      pred.TrainingDate,
	}, nil
}
