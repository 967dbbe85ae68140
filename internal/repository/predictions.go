package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aura-health/aura/backend/internal/models"
	"github.com/aura-health/aura/backend/pkg/supabase"
)

type predictionRepository struct {
	client *supabase.Client
}

// NewPredictionRepository creates a new prediction repository
func NewPredictionRepository(client *supabase.Client) PredictionRepository {
	return &predictionRepository{client: client}
}

func (r *predictionRepository) CreateBatch(ctx context.Context, predictions []models.Prediction) error {
	if len(predictions) == 0 {
		return nil
	}

	insertData := make([]map[string]interface{}, 0, len(predictions))
	for _, p := range predictions {
		insertData = append(insertData, map[string]interface{}{
			"user_id":          p.UserID,
			"description":      p.Description,
			"type":             p.Type,
			"confidence":       p.Confidence,
			"suggested_action": p.SuggestedAction,
			"expires_at":       p.ExpiresAt,
			"created_at":       p.CreatedAt,
		})
	}

	if _, err := r.client.Insert(ctx, "predictions", insertData); err != nil {
		return fmt.Errorf("failed to create predictions: %w", err)
	}

	return nil
}

func (r *predictionRepository) GetActive(ctx context.Context, userID string, now time.Time) ([]models.Prediction, error) {
	query := map[string]interface{}{
		"user_id":    fmt.Sprintf("eq.%s", userID),
		"expires_at": fmt.Sprintf("gt.%s", now.Format(time.RFC3339)),
		"order":      "created_at.desc",
	}

	body, err := r.client.Query(ctx, "predictions", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get predictions: %w", err)
	}

	var predictions []models.Prediction
	if err := json.Unmarshal(body, &predictions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return predictions, nil
}

func (r *predictionRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	query := map[string]interface{}{
		"expires_at": fmt.Sprintf("lt.%s", now.Format(time.RFC3339)),
	}

	if err := r.client.DeleteWhere(ctx, "predictions", query); err != nil {
		return fmt.Errorf("failed to delete expired predictions: %w", err)
	}

	return nil
}
