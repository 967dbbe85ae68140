package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aura-health/aura/backend/internal/models"
	"github.com/aura-health/aura/backend/pkg/supabase"
)

type healthDataRepository struct {
	client *supabase.Client
}

// NewHealthDataRepository creates a new health data repository
func NewHealthDataRepository(client *supabase.Client) HealthDataRepository {
	return &healthDataRepository{client: client}
}

func pointInsertData(point *models.HealthDataPoint) map[string]interface{} {
	// PostgREST requires identical keys across objects in a batch insert,
	// so every key is present with nil standing in for absent metrics
	return map[string]interface{}{
		"user_id":       point.UserID,
		"timestamp":     point.Timestamp,
		"heart_rate":    point.HeartRate,
		"steps":         point.Steps,
		"stress_level":  point.StressLevel,
		"sleep_quality": point.SleepQuality,
		"mood":          point.Mood,
		"source":        point.Source,
	}
}

func (r *healthDataRepository) Create(ctx context.Context, point *models.HealthDataPoint) (*models.HealthDataPoint, error) {
	body, err := r.client.Insert(ctx, "health_data", pointInsertData(point))
	if err != nil {
		return nil, fmt.Errorf("failed to create health data point: %w", err)
	}

	var points []models.HealthDataPoint
	if err := json.Unmarshal(body, &points); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("no health data point returned")
	}

	return &points[0], nil
}

func (r *healthDataRepository) CreateBatch(ctx context.Context, points []models.HealthDataPoint) ([]models.HealthDataPoint, error) {
	if len(points) == 0 {
		return []models.HealthDataPoint{}, nil
	}

	insertData := make([]map[string]interface{}, 0, len(points))
	for i := range points {
		insertData = append(insertData, pointInsertData(&points[i]))
	}

	body, err := r.client.Insert(ctx, "health_data", insertData)
	if err != nil {
		return nil, fmt.Errorf("failed to batch create health data: %w", err)
	}

	var created []models.HealthDataPoint
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return created, nil
}

func (r *healthDataRepository) GetByUserIDSince(ctx context.Context, userID string, since time.Time, limit int) ([]models.HealthDataPoint, error) {
	query := map[string]interface{}{
		"user_id":   fmt.Sprintf("eq.%s", userID),
		"timestamp": fmt.Sprintf("gt.%s", since.Format(time.RFC3339)),
		"order":     "timestamp.asc",
	}
	if limit > 0 {
		query["limit"] = limit
	}

	body, err := r.client.Query(ctx, "health_data", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get health data: %w", err)
	}

	var points []models.HealthDataPoint
	if err := json.Unmarshal(body, &points); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return points, nil
}

func (r *healthDataRepository) GetLatest(ctx context.Context, userID string) (*models.HealthDataPoint, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "timestamp.desc",
		"limit":   1,
	}

	body, err := r.client.Query(ctx, "health_data", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest health data: %w", err)
	}

	var points []models.HealthDataPoint
	if err := json.Unmarshal(body, &points); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(points) == 0 {
		return nil, nil
	}

	return &points[0], nil
}

func (r *healthDataRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
	}

	count, err := r.client.Count(ctx, "health_data", query)
	if err != nil {
		return 0, fmt.Errorf("failed to count health data: %w", err)
	}

	return count, nil
}
