package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aura-health/aura/backend/internal/logger"
	"github.com/aura-health/aura/backend/internal/models"
	"github.com/aura-health/aura/backend/internal/repository"
)

const (
	// How far back a run looks when fetching history
	AnalysisWindowDays = 30

	// Minimum data points required before a run produces anything
	MinPointsForAnalysis = 7

	// Only patterns above this confidence appear in the wellness profile
	ProfileMinConfidence = 0.5

	// How many pattern descriptions the profile summary quotes
	summaryTopPatterns = 3
)

type wellnessService struct {
	healthRepo     repository.HealthDataRepository
	patternRepo    repository.PatternRepository
	predictionRepo repository.PredictionRepository

	// now is injected so tests can supply fixed instants
	now func() time.Time
}

// NewWellnessService creates a new wellness service
func NewWellnessService(
	healthRepo repository.HealthDataRepository,
	patternRepo repository.PatternRepository,
	predictionRepo repository.PredictionRepository,
) WellnessService {
	return &wellnessService{
		healthRepo:     healthRepo,
		patternRepo:    patternRepo,
		predictionRepo: predictionRepo,
		now:            time.Now,
	}
}

// Analyze runs the full pattern-detection pipeline for one user over the
// last 30 days of history and persists the results. Patterns are upserted
// under their deterministic ids (last write wins on recompute); predictions
// are always inserted as new records.
func (s *wellnessService) Analyze(ctx context.Context, userID string) (*models.AnalysisResult, error) {
	log := logger.Ctx(ctx)
	now := s.now()
	since := now.AddDate(0, 0, -AnalysisWindowDays)

	data, err := s.healthRepo.GetByUserIDSince(ctx, userID, since, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get health data: %w", err)
	}

	// Too little signal is a normal outcome, not an error
	if len(data) < MinPointsForAnalysis {
		log.Info("not enough data for pattern analysis",
			logger.Int("data_points", len(data)),
		)
		return &models.AnalysisResult{
			Patterns:    []models.Pattern{},
			Predictions: []models.Prediction{},
		}, nil
	}

	patterns := detectTimeOfDayPatterns(data, now)
	patterns = append(patterns, detectDayOfWeekPatterns(data, now)...)
	patterns = append(patterns, detectCorrelationPatterns(data, now)...)
	for i := range patterns {
		patterns[i].UserID = userID
	}

	predictions := generatePredictions(patterns, now)
	for i := range predictions {
		predictions[i].UserID = userID
	}

	if err := s.patternRepo.UpsertBatch(ctx, patterns); err != nil {
		return nil, fmt.Errorf("failed to store patterns: %w", err)
	}
	if err := s.predictionRepo.CreateBatch(ctx, predictions); err != nil {
		return nil, fmt.Errorf("failed to store predictions: %w", err)
	}

	log.Info("pattern analysis completed",
		logger.Int("data_points", len(data)),
		logger.Int("patterns", len(patterns)),
		logger.Int("predictions", len(predictions)),
	)

	return &models.AnalysisResult{Patterns: patterns, Predictions: predictions}, nil
}

// GetProfile builds the read-side wellness profile from previously
// persisted patterns and predictions. No recomputation happens here.
func (s *wellnessService) GetProfile(ctx context.Context, userID string) (*models.WellnessProfile, error) {
	dataPoints, err := s.healthRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count health data: %w", err)
	}

	patterns, err := s.patternRepo.GetConfident(ctx, userID, ProfileMinConfidence)
	if err != nil {
		return nil, fmt.Errorf("failed to get patterns: %w", err)
	}

	predictions, err := s.predictionRepo.GetActive(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to get predictions: %w", err)
	}

	return &models.WellnessProfile{
		Patterns:        patterns,
		Predictions:     predictions,
		Summary:         buildProfileSummary(patterns),
		DataPoints:      dataPoints,
		ProfileStrength: profileStrengthFor(dataPoints),
	}, nil
}

// profileStrengthFor maps the total historical data-point count to a
// coarse maturity label
func profileStrengthFor(dataPoints int64) models.ProfileStrength {
	switch {
	case dataPoints < 14:
		return models.StrengthBuilding
	case dataPoints < 30:
		return models.StrengthEmerging
	case dataPoints < 60:
		return models.StrengthEstablished
	default:
		return models.StrengthStrong
	}
}

// buildProfileSummary generates the conversational summary line shown at
// the top of the wellness profile
func buildProfileSummary(patterns []models.Pattern) string {
	if len(patterns) == 0 {
		return "I'm still learning your patterns. Keep tracking and I'll have insights for you within a week or two!"
	}

	plural := ""
	if len(patterns) > 1 {
		plural = "s"
	}

	top := patterns
	if len(top) > summaryTopPatterns {
		top = top[:summaryTopPatterns]
	}
	descriptions := make([]string, 0, len(top))
	for _, p := range top {
		descriptions = append(descriptions, p.Description)
	}

	return fmt.Sprintf("I've discovered %d pattern%s in your wellness data. %s.",
		len(patterns), plural, strings.Join(descriptions, ". "))
}
