package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aura-health/aura/backend/internal/models"
	"github.com/aura-health/aura/backend/pkg/supabase"
)

type patternRepository struct {
	client *supabase.Client
}

// NewPatternRepository creates a new pattern repository
func NewPatternRepository(client *supabase.Client) PatternRepository {
	return &patternRepository{client: client}
}

func (r *patternRepository) UpsertBatch(ctx context.Context, patterns []models.Pattern) error {
	if len(patterns) == 0 {
		return nil
	}

	// PostgREST requires identical keys across objects in a batch,
	// so nullable columns are always present with nil values
	upsertData := make([]map[string]interface{}, 0, len(patterns))
	for _, p := range patterns {
		upsertData = append(upsertData, map[string]interface{}{
			"user_id":       p.UserID,
			"pattern_id":    p.PatternID,
			"type":          p.Type,
			"description":   p.Description,
			"confidence":    p.Confidence,
			"metric":        p.Metric,
			"trigger":       p.Trigger,
			"day_of_week":   p.DayOfWeek,
			"hour_of_day":   p.HourOfDay,
			"discovered_at": p.DiscoveredAt,
			"occurrences":   p.Occurrences,
		})
	}

	if _, err := r.client.Upsert(ctx, "patterns", upsertData, "user_id,pattern_id"); err != nil {
		return fmt.Errorf("failed to upsert patterns: %w", err)
	}

	return nil
}

func (r *patternRepository) GetConfident(ctx context.Context, userID string, minConfidence float64) ([]models.Pattern, error) {
	query := map[string]interface{}{
		"user_id":    fmt.Sprintf("eq.%s", userID),
		"confidence": fmt.Sprintf("gt.%g", minConfidence),
		"order":      "confidence.desc",
	}

	body, err := r.client.Query(ctx, "patterns", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get patterns: %w", err)
	}

	var patterns []models.Pattern
	if err := json.Unmarshal(body, &patterns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return patterns, nil
}
