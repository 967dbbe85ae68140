package service

import (
	"strings"
	"testing"
	"time"

	"github.com/aura-health/aura/backend/internal/models"
)

// Monday, 1 PM UTC
var predictionNow = time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)

func hourPattern(hour int, confidence float64) models.Pattern {
	return models.Pattern{
		PatternID:   "tod_stress_15",
		Type:        models.PatternTypeTimeOfDay,
		Description: "Your stress tends to spike around 3 PM",
		Confidence:  confidence,
		Metric:      models.MetricStress,
		HourOfDay:   &hour,
	}
}

func dayPattern(day int, metric models.PatternMetric, confidence float64) models.Pattern {
	return models.Pattern{
		PatternID:   "dow_test",
		Type:        models.PatternTypeDayOfWeek,
		Description: "Mondays tend to be more stressful for you",
		Confidence:  confidence,
		Metric:      metric,
		DayOfWeek:   &day,
	}
}

func TestGeneratePredictionsImminentHour(t *testing.T) {
	patterns := []models.Pattern{hourPattern(15, 0.8)}

	predictions := generatePredictions(patterns, predictionNow)
	if len(predictions) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(predictions))
	}

	p := predictions[0]
	if p.Type != models.PredictionTypeProactiveWellness {
		t.Errorf("expected type proactive_wellness, got %q", p.Type)
	}
	if p.SuggestedAction != models.ActionBreathingExercise {
		t.Errorf("expected action breathing_exercise, got %q", p.SuggestedAction)
	}
	if p.Confidence != 0.8 {
		t.Errorf("expected confidence 0.8, got %v", p.Confidence)
	}
	wantExpiry := predictionNow.Add(2 * time.Hour)
	if !p.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("expected expiry %v, got %v", wantExpiry, p.ExpiresAt)
	}
	if !strings.HasSuffix(p.Description, ". Let's prepare with a quick breathing exercise.") {
		t.Errorf("unexpected description: %q", p.Description)
	}
}

func TestGeneratePredictionsHourWindow(t *testing.T) {
	tests := []struct {
		name string
		hour int
		want int
	}{
		{"three hours ahead is too far", 16, 0},
		{"current hour already passed", 13, 0},
		{"earlier hour never predicts", 11, 0},
		{"one hour ahead predicts", 14, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predictions := generatePredictions([]models.Pattern{hourPattern(tt.hour, 0.8)}, predictionNow)
			if len(predictions) != tt.want {
				t.Errorf("expected %d predictions, got %d", tt.want, len(predictions))
			}
		})
	}
}

func TestGeneratePredictionsConfidenceFloor(t *testing.T) {
	// Below the floor
	if got := generatePredictions([]models.Pattern{hourPattern(15, 0.4)}, predictionNow); len(got) != 0 {
		t.Errorf("expected no predictions at confidence 0.4, got %d", len(got))
	}

	// Exactly at the floor qualifies
	if got := generatePredictions([]models.Pattern{hourPattern(15, 0.5)}, predictionNow); len(got) != 1 {
		t.Errorf("expected 1 prediction at confidence 0.5, got %d", len(got))
	}
}

func TestGeneratePredictionsDayOfWeekStress(t *testing.T) {
	patterns := []models.Pattern{dayPattern(1, models.MetricStress, 0.7)}

	predictions := generatePredictions(patterns, predictionNow)
	if len(predictions) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(predictions))
	}

	p := predictions[0]
	if p.Type != models.PredictionTypeProactiveCheckin {
		t.Errorf("expected type proactive_checkin, got %q", p.Type)
	}
	if p.SuggestedAction != models.ActionCheckIn {
		t.Errorf("expected action check_in, got %q", p.SuggestedAction)
	}
	wantExpiry := predictionNow.Add(24 * time.Hour)
	if !p.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("expected expiry %v, got %v", wantExpiry, p.ExpiresAt)
	}
	if !strings.HasSuffix(p.Description, ". I'm here if you need to talk.") {
		t.Errorf("unexpected description: %q", p.Description)
	}
}

func TestGeneratePredictionsDayOfWeekSleep(t *testing.T) {
	patterns := []models.Pattern{dayPattern(1, models.MetricSleep, 0.7)}

	predictions := generatePredictions(patterns, predictionNow)
	if len(predictions) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(predictions))
	}

	p := predictions[0]
	if p.Type != models.PredictionTypeSleepPreparation {
		t.Errorf("expected type sleep_preparation, got %q", p.Type)
	}
	if p.SuggestedAction != models.ActionSleepRoutine {
		t.Errorf("expected action sleep_routine, got %q", p.SuggestedAction)
	}
	wantExpiry := predictionNow.Add(12 * time.Hour)
	if !p.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("expected expiry %v, got %v", wantExpiry, p.ExpiresAt)
	}
	if !strings.HasSuffix(p.Description, ". Try winding down earlier tonight.") {
		t.Errorf("unexpected description: %q", p.Description)
	}
}

func TestGeneratePredictionsDayOfWeekOnlyMatchesToday(t *testing.T) {
	// predictionNow is a Monday; a Tuesday pattern stays quiet
	patterns := []models.Pattern{dayPattern(2, models.MetricStress, 0.7)}

	if got := generatePredictions(patterns, predictionNow); len(got) != 0 {
		t.Errorf("expected no predictions for another weekday, got %d", len(got))
	}
}

func TestGeneratePredictionsCorrelationsNeverPredict(t *testing.T) {
	trigger := "poor_sleep"
	patterns := []models.Pattern{{
		PatternID:   "corr_sleep_stress",
		Type:        models.PatternTypeCorrelation,
		Description: "Poor sleep nights are followed by higher stress the next day",
		Confidence:  0.9,
		Metric:      models.MetricSleepStress,
		Trigger:     &trigger,
	}}

	if got := generatePredictions(patterns, predictionNow); len(got) != 0 {
		t.Errorf("expected correlations to produce no predictions, got %d", len(got))
	}
}

func TestGeneratePredictionsMultiplePatterns(t *testing.T) {
	patterns := []models.Pattern{
		dayPattern(1, models.MetricStress, 0.7),
		dayPattern(1, models.MetricSleep, 0.8),
		hourPattern(15, 0.3), // below confidence floor
	}

	predictions := generatePredictions(patterns, predictionNow)
	if len(predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(predictions))
	}

	types := map[models.PredictionType]bool{}
	for _, p := range predictions {
		types[p.Type] = true
	}
	if !types[models.PredictionTypeProactiveCheckin] || !types[models.PredictionTypeSleepPreparation] {
		t.Errorf("unexpected prediction types: %v", types)
	}
}
