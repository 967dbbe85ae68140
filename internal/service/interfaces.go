package service

import (
	"context"

	"github.com/aura-health/aura/backend/internal/models"
)

// HealthDataService defines the interface for health measurement business logic
type HealthDataService interface {
	Record(ctx context.Context, userID string, req *models.RecordHealthDataRequest) (*models.HealthDataPoint, error)
	RecordBatch(ctx context.Context, userID string, req *models.BatchRecordHealthDataRequest) (int, error)
	GetRecent(ctx context.Context, userID string, days int) ([]models.HealthDataPoint, error)
	GetLatest(ctx context.Context, userID string) (*models.HealthDataPoint, error)
}

// WellnessService defines the interface for pattern analysis and the
// read-side wellness profile
type WellnessService interface {
	Analyze(ctx context.Context, userID string) (*models.AnalysisResult, error)
	GetProfile(ctx context.Context, userID string) (*models.WellnessProfile, error)
}
