package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aura-health/aura/backend/internal/models"
	"github.com/aura-health/aura/backend/internal/repository"
)

const (
	// Default lookback for history queries
	defaultHistoryDays = 7

	// Cap on rows returned by a history query
	maxHistoryRows = 500

	defaultSource = "manual"
)

type healthDataService struct {
	healthRepo repository.HealthDataRepository
	now        func() time.Time
}

// NewHealthDataService creates a new health data service
func NewHealthDataService(healthRepo repository.HealthDataRepository) HealthDataService {
	return &healthDataService{
		healthRepo: healthRepo,
		now:        time.Now,
	}
}

func (s *healthDataService) Record(ctx context.Context, userID string, req *models.RecordHealthDataRequest) (*models.HealthDataPoint, error) {
	point := s.pointFromRequest(userID, req)

	created, err := s.healthRepo.Create(ctx, point)
	if err != nil {
		return nil, fmt.Errorf("failed to record health data: %w", err)
	}

	return created, nil
}

func (s *healthDataService) RecordBatch(ctx context.Context, userID string, req *models.BatchRecordHealthDataRequest) (int, error) {
	points := make([]models.HealthDataPoint, 0, len(req.Data))
	for i := range req.Data {
		points = append(points, *s.pointFromRequest(userID, &req.Data[i]))
	}

	created, err := s.healthRepo.CreateBatch(ctx, points)
	if err != nil {
		return 0, fmt.Errorf("failed to record health data batch: %w", err)
	}

	return len(created), nil
}

func (s *healthDataService) GetRecent(ctx context.Context, userID string, days int) ([]models.HealthDataPoint, error) {
	if days <= 0 {
		days = defaultHistoryDays
	}
	since := s.now().AddDate(0, 0, -days)

	points, err := s.healthRepo.GetByUserIDSince(ctx, userID, since, maxHistoryRows)
	if err != nil {
		return nil, fmt.Errorf("failed to get health data: %w", err)
	}

	return points, nil
}

func (s *healthDataService) GetLatest(ctx context.Context, userID string) (*models.HealthDataPoint, error) {
	point, err := s.healthRepo.GetLatest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest health data: %w", err)
	}

	return point, nil
}

func (s *healthDataService) pointFromRequest(userID string, req *models.RecordHealthDataRequest) *models.HealthDataPoint {
	timestamp := s.now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	source := req.Source
	if source == "" {
		source = defaultSource
	}

	return &models.HealthDataPoint{
		UserID:       userID,
		Timestamp:    timestamp,
		HeartRate:    req.HeartRate,
		Steps:        req.Steps,
		StressLevel:  req.StressLevel,
		SleepQuality: req.SleepQuality,
		Mood:         req.Mood,
		Source:       source,
	}
}
