package models

import "time"

// HealthDataPoint represents a single timestamped health measurement.
// A nil metric field means the metric was not measured at that instant,
// not that it was zero.
type HealthDataPoint struct {
	ID           string    `json:"id,omitempty"`
	UserID       string    `json:"user_id"`
	Timestamp    time.Time `json:"timestamp"`
	HeartRate    *float64  `json:"heart_rate,omitempty"`    // beats/min
	Steps        *float64  `json:"steps,omitempty"`         // daily count
	StressLevel  *float64  `json:"stress_level,omitempty"`  // 0-100
	SleepQuality *float64  `json:"sleep_quality,omitempty"` // 0-100
	Mood         *float64  `json:"mood,omitempty"`          // 1-10
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// RecordHealthDataRequest represents the request to record a measurement.
// Timestamp defaults to the server clock when omitted.
type RecordHealthDataRequest struct {
	Timestamp    *time.Time `json:"timestamp"`
	HeartRate    *float64   `json:"heart_rate" binding:"omitempty,min=30,max=250"`
	Steps        *float64   `json:"steps" binding:"omitempty,min=0"`
	StressLevel  *float64   `json:"stress_level" binding:"omitempty,min=0,max=100"`
	SleepQuality *float64   `json:"sleep_quality" binding:"omitempty,min=0,max=100"`
	Mood         *float64   `json:"mood" binding:"omitempty,min=1,max=10"`
	Source       string     `json:"source" binding:"omitempty,oneof=apple_health google_fit manual"`
}

// BatchRecordHealthDataRequest represents a batch submission of measurements
type BatchRecordHealthDataRequest struct {
	Data []RecordHealthDataRequest `json:"data" binding:"required,min=1,max=100,dive"`
}

// HealthDataResponse is the API response for health data queries
type HealthDataResponse struct {
	Data  []HealthDataPoint `json:"data"`
	Count int               `json:"count"`
}
