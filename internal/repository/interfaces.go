package repository

import (
	"context"
	"time"

	"github.com/aura-health/aura/backend/internal/models"
)

// HealthDataRepository defines the interface for health measurement data access
type HealthDataRepository interface {
	Create(ctx context.Context, point *models.HealthDataPoint) (*models.HealthDataPoint, error)
	CreateBatch(ctx context.Context, points []models.HealthDataPoint) ([]models.HealthDataPoint, error)
	// GetByUserIDSince returns points newer than since, oldest first.
	// A limit of 0 means unlimited.
	GetByUserIDSince(ctx context.Context, userID string, since time.Time, limit int) ([]models.HealthDataPoint, error)
	GetLatest(ctx context.Context, userID string) (*models.HealthDataPoint, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// PatternRepository defines the interface for pattern data access. Rows are
// keyed by (user_id, pattern_id); UpsertBatch overwrites on conflict.
type PatternRepository interface {
	UpsertBatch(ctx context.Context, patterns []models.Pattern) error
	// GetConfident returns patterns with confidence strictly above
	// minConfidence, highest first.
	GetConfident(ctx context.Context, userID string, minConfidence float64) ([]models.Pattern, error)
}

// PredictionRepository defines the interface for prediction data access.
// Predictions are always inserted fresh, never upserted.
type PredictionRepository interface {
	CreateBatch(ctx context.Context, predictions []models.Prediction) error
	// GetActive returns predictions whose expires_at is after now.
	GetActive(ctx context.Context, userID string, now time.Time) ([]models.Prediction, error)
	// DeleteExpired removes predictions across all users whose expires_at
	// is before now.
	DeleteExpired(ctx context.Context, now time.Time) error
}
