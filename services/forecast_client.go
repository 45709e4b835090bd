package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type PredictionRequest struct {
	CurrentQuantity float64 `json:"current_quantity"`
	Month           int     `json:"month"`
}

type Prediction struct {
	PredictedQuantity float64                `json:"predicted_quantity"`
	ModelMetrics      map[string]interface{} `json:"model_metrics"`
	TrainingDate      string                 `json:"training_date"`
}

// FetchPrediction calls the external prediction endpoint with the product's
// current on-hand quantity and the target month.
func FetchPrediction(ctx context.Context, baseURL string, req PredictionRequest) (*Prediction, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/predict", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast service returned %d", resp.StatusCode)
	}

	var pred Prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, err
	}
	return &pred, nil
}
