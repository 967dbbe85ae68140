package models

import "time"

// PatternType represents the kind of behavioral pattern
type PatternType string

const (
	PatternTypeTimeOfDay   PatternType = "time_of_day"
	PatternTypeDayOfWeek   PatternType = "day_of_week"
	PatternTypeCorrelation PatternType = "correlation"
	// PatternTypePreEvent is part of the pattern vocabulary but no detector
	// currently produces it.
	PatternTypePreEvent PatternType = "pre_event"
)

// PatternMetric identifies which signal a pattern concerns
type PatternMetric string

const (
	MetricStress      PatternMetric = "stress"
	MetricSleep       PatternMetric = "sleep"
	MetricSleepStress PatternMetric = "sleep_stress"
	MetricStepsSleep  PatternMetric = "steps_sleep"
)

// PredictionType represents the kind of prediction
type PredictionType string

const (
	PredictionTypeProactiveWellness PredictionType = "proactive_wellness"
	PredictionTypeProactiveCheckin  PredictionType = "proactive_checkin"
	PredictionTypeSleepPreparation  PredictionType = "sleep_preparation"
)

// SuggestedAction is the intervention a prediction recommends
type SuggestedAction string

const (
	ActionBreathingExercise SuggestedAction = "breathing_exercise"
	ActionCheckIn           SuggestedAction = "check_in"
	ActionSleepRoutine      SuggestedAction = "sleep_routine"
)

// ProfileStrength is a coarse classification of how much historical data
// exists for a user
type ProfileStrength string

const (
	StrengthBuilding    ProfileStrength = "building"
	StrengthEmerging    ProfileStrength = "emerging"
	StrengthEstablished ProfileStrength = "established"
	StrengthStrong      ProfileStrength = "strong"
)

// Pattern represents a recurring statistical regularity in a user's health
// metrics. PatternID is deterministic for a given kind and discriminator
// (e.g. "tod_stress_15"), so re-analysis updates the stored row rather than
// duplicating it.
type Pattern struct {
	ID           string        `json:"id,omitempty"` // surrogate row id, assigned by the store
	UserID       string        `json:"user_id"`
	PatternID    string        `json:"pattern_id"`
	Type         PatternType   `json:"type"`
	Description  string        `json:"description"`
	Confidence   float64       `json:"confidence"` // 0-1
	Metric       PatternMetric `json:"metric"`
	Trigger      *string       `json:"trigger,omitempty"`
	DayOfWeek    *int          `json:"day_of_week,omitempty"` // 0=Sunday..6=Saturday
	HourOfDay    *int          `json:"hour_of_day,omitempty"` // 0-23
	DiscoveredAt time.Time     `json:"discovered_at"`
	Occurrences  int           `json:"occurrences"`
}

// Prediction is a short-lived, actionable inference derived from a pattern
// and the current moment. Predictions have no identity beyond creation time;
// consumers filter on ExpiresAt.
type Prediction struct {
	ID              string          `json:"id,omitempty"`
	UserID          string          `json:"user_id"`
	Description     string          `json:"description"`
	Type            PredictionType  `json:"type"`
	Confidence      float64         `json:"confidence"`
	SuggestedAction SuggestedAction `json:"suggested_action"`
	ExpiresAt       time.Time       `json:"expires_at"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AnalysisResult is the outcome of one pattern-analysis run
type AnalysisResult struct {
	Patterns    []Pattern    `json:"patterns"`
	Predictions []Prediction `json:"predictions"`
}

// WellnessProfile is the read-side aggregate of previously persisted
// patterns and predictions, computed on demand and never stored.
type WellnessProfile struct {
	Patterns        []Pattern       `json:"patterns"`
	Predictions     []Prediction    `json:"predictions"`
	Summary         string          `json:"summary"`
	DataPoints      int64           `json:"data_points"`
	ProfileStrength ProfileStrength `json:"profile_strength"`
}
