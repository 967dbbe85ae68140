package service

import (
	"time"

	"github.com/aura-health/aura/backend/internal/models"
)

const (
	// Patterns below this confidence never generate predictions
	PredictionMinConfidence = 0.5

	// How many hours ahead a flagged hour still counts as imminent
	imminentHourWindow = 2

	// How long day-of-week predictions stay actionable
	checkinValidity   = 24 * time.Hour
	sleepPrepValidity = 12 * time.Hour
)

// generatePredictions derives time-bounded predictions from freshly
// discovered patterns and the current instant. Each qualifying pattern
// yields at most one prediction per run; correlation patterns never
// generate predictions.
func generatePredictions(patterns []models.Pattern, now time.Time) []models.Prediction {
	predictions := []models.Prediction{}

	currentHour := now.Hour()
	currentDay := int(now.Weekday())

	for _, pattern := range patterns {
		if pattern.Confidence < PredictionMinConfidence {
			continue
		}

		switch pattern.Type {
		case models.PatternTypeTimeOfDay:
			if pattern.HourOfDay == nil {
				continue
			}
			// Only predict when the flagged hour is imminent: not past,
			// not more than two hours away.
			hoursUntil := *pattern.HourOfDay - currentHour
			if hoursUntil <= 0 || hoursUntil > imminentHourWindow {
				continue
			}
			predictions = append(predictions, models.Prediction{
				Description:     pattern.Description + ". Let's prepare with a quick breathing exercise.",
				Type:            models.PredictionTypeProactiveWellness,
				Confidence:      pattern.Confidence,
				SuggestedAction: models.ActionBreathingExercise,
				ExpiresAt:       now.Add(time.Duration(hoursUntil) * time.Hour),
				CreatedAt:       now,
			})

		case models.PatternTypeDayOfWeek:
			if pattern.DayOfWeek == nil || *pattern.DayOfWeek != currentDay {
				continue
			}
			switch pattern.Metric {
			case models.MetricStress:
				predictions = append(predictions, models.Prediction{
					Description:     pattern.Description + ". I'm here if you need to talk.",
					Type:            models.PredictionTypeProactiveCheckin,
					Confidence:      pattern.Confidence,
					SuggestedAction: models.ActionCheckIn,
					ExpiresAt:       now.Add(checkinValidity),
					CreatedAt:       now,
				})
			case models.MetricSleep:
				predictions = append(predictions, models.Prediction{
					Description:     pattern.Description + ". Try winding down earlier tonight.",
					Type:            models.PredictionTypeSleepPreparation,
					Confidence:      pattern.Confidence,
					SuggestedAction: models.ActionSleepRoutine,
					ExpiresAt:       now.Add(sleepPrepValidity),
					CreatedAt:       now,
				})
			}
		}
	}

	return predictions
}
