package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/aura-health/aura/backend/internal/models"
)

const (
	// Minimum samples in an hourly bucket before it can be flagged
	MinSamplesPerHour = 5

	// Minimum samples in a weekday bucket before it can be flagged
	MinSamplesPerDay = 3

	// Minimum trigger occurrences before a correlation is considered
	MinCorrelationEvents = 5

	// Elevation multipliers against the mean-of-bucket-means baseline
	HourlyStressMultiplier = 1.3
	DailyStressMultiplier  = 1.25
	DailySleepMultiplier   = 0.8

	// Co-occurrence ratio a correlation must exceed
	CorrelationRatioFloor = 0.6

	// Confidence scaling: two weeks of daily data saturates an hourly
	// pattern, eight occurrences saturate a weekday pattern
	hourlyConfidenceScale = 14
	dailyConfidenceScale  = 8

	maxHourlyConfidence      = 0.95
	maxDailyConfidence       = 0.9
	maxCorrelationConfidence = 0.9

	// Metric thresholds for the pairwise correlation scans
	poorSleepBelow   = 40.0
	highStressAbove  = 60.0
	activeStepsAbove = 8000.0
	goodSleepAbove   = 70.0

	// Window within which two consecutive points count as "roughly a day
	// apart" for the sleep-to-stress scan
	minNextDayGap = 8 * time.Hour
	maxNextDayGap = 36 * time.Hour
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// =============================================================================
// Metric Aggregation
// =============================================================================

// metricValue extracts one optional metric from a data point
type metricValue func(p models.HealthDataPoint) *float64

func stressOf(p models.HealthDataPoint) *float64 { return p.StressLevel }
func sleepOf(p models.HealthDataPoint) *float64  { return p.SleepQuality }

// hourlyBuckets groups a metric by hour of day (0-23). Points missing the
// metric contribute nothing to their bucket.
func hourlyBuckets(data []models.HealthDataPoint, metric metricValue) [24][]float64 {
	var buckets [24][]float64
	for _, p := range data {
		if v := metric(p); v != nil {
			hour := p.Timestamp.Hour()
			buckets[hour] = append(buckets[hour], *v)
		}
	}
	return buckets
}

// weekdayBuckets groups a metric by day of week (0=Sunday..6=Saturday)
func weekdayBuckets(data []models.HealthDataPoint, metric metricValue) [7][]float64 {
	var buckets [7][]float64
	for _, p := range data {
		if v := metric(p); v != nil {
			day := int(p.Timestamp.Weekday())
			buckets[day] = append(buckets[day], *v)
		}
	}
	return buckets
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// bucketStat holds the summary for one non-empty bucket
type bucketStat struct {
	index int
	avg   float64
	count int
}

// summarizeBuckets returns per-bucket stats for non-empty buckets and the
// baseline: the mean of the bucket means. Every non-empty bucket weighs
// equally in the baseline regardless of its sample count.
func summarizeBuckets(buckets [][]float64) ([]bucketStat, float64) {
	stats := make([]bucketStat, 0, len(buckets))
	var sumOfMeans float64
	for i, values := range buckets {
		if len(values) == 0 {
			continue
		}
		avg := mean(values)
		stats = append(stats, bucketStat{index: i, avg: avg, count: len(values)})
		sumOfMeans += avg
	}
	if len(stats) == 0 {
		return stats, 0
	}
	return stats, sumOfMeans / float64(len(stats))
}

// =============================================================================
// Pattern Detectors
// =============================================================================

// detectTimeOfDayPatterns finds hours where stress runs markedly above the
// user's own baseline, e.g. "Your stress tends to spike around 3 PM".
func detectTimeOfDayPatterns(data []models.HealthDataPoint, now time.Time) []models.Pattern {
	patterns := []models.Pattern{}

	buckets := hourlyBuckets(data, stressOf)
	stats, baseline := summarizeBuckets(buckets[:])

	for _, s := range stats {
		if s.count < MinSamplesPerHour || s.avg <= baseline*HourlyStressMultiplier {
			continue
		}
		hour := s.index
		patterns = append(patterns, models.Pattern{
			PatternID:    fmt.Sprintf("tod_stress_%d", hour),
			Type:         models.PatternTypeTimeOfDay,
			Description:  fmt.Sprintf("Your stress tends to spike around %s", formatHour(hour)),
			Confidence:   math.Min(float64(s.count)/hourlyConfidenceScale, maxHourlyConfidence),
			Metric:       models.MetricStress,
			HourOfDay:    &hour,
			DiscoveredAt: now,
			Occurrences:  s.count,
		})
	}

	return patterns
}

// detectDayOfWeekPatterns finds weekdays with elevated stress or depressed
// sleep quality. The two sub-analyses are independent; both may flag the
// same day under distinct pattern ids.
func detectDayOfWeekPatterns(data []models.HealthDataPoint, now time.Time) []models.Pattern {
	patterns := []models.Pattern{}

	// High-stress days
	stressBuckets := weekdayBuckets(data, stressOf)
	stressStats, stressBaseline := summarizeBuckets(stressBuckets[:])
	for _, s := range stressStats {
		if s.count < MinSamplesPerDay || s.avg <= stressBaseline*DailyStressMultiplier {
			continue
		}
		day := s.index
		patterns = append(patterns, models.Pattern{
			PatternID:    fmt.Sprintf("dow_stress_%d", day),
			Type:         models.PatternTypeDayOfWeek,
			Description:  fmt.Sprintf("%ss tend to be more stressful for you", dayNames[day]),
			Confidence:   math.Min(float64(s.count)/dailyConfidenceScale, maxDailyConfidence),
			Metric:       models.MetricStress,
			DayOfWeek:    &day,
			DiscoveredAt: now,
			Occurrences:  s.count,
		})
	}

	// Poor-sleep nights
	sleepBuckets := weekdayBuckets(data, sleepOf)
	sleepStats, sleepBaseline := summarizeBuckets(sleepBuckets[:])
	for _, s := range sleepStats {
		if s.count < MinSamplesPerDay || s.avg >= sleepBaseline*DailySleepMultiplier {
			continue
		}
		day := s.index
		patterns = append(patterns, models.Pattern{
			PatternID:    fmt.Sprintf("dow_sleep_%d", day),
			Type:         models.PatternTypeDayOfWeek,
			Description:  fmt.Sprintf("You tend to sleep poorly on %s nights", dayNames[day]),
			Confidence:   math.Min(float64(s.count)/dailyConfidenceScale, maxDailyConfidence),
			Metric:       models.MetricSleep,
			DayOfWeek:    &day,
			DiscoveredAt: now,
			Occurrences:  s.count,
		})
	}

	return patterns
}

// detectCorrelationPatterns scans consecutive pairs of the time-sorted
// series for lagged cross-metric relationships.
func detectCorrelationPatterns(data []models.HealthDataPoint, now time.Time) []models.Pattern {
	patterns := []models.Pattern{}

	sorted := make([]models.HealthDataPoint, len(data))
	copy(sorted, data)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	// Poor sleep followed by next-day stress. Only pairs roughly one day
	// apart count; same-day and multi-day gaps are skipped entirely.
	poorSleepCount := 0
	poorSleepHighStressCount := 0
	for i := 0; i+1 < len(sorted); i++ {
		current, next := sorted[i], sorted[i+1]

		gap := next.Timestamp.Sub(current.Timestamp)
		if gap < minNextDayGap || gap > maxNextDayGap {
			continue
		}

		if current.SleepQuality != nil && *current.SleepQuality < poorSleepBelow {
			poorSleepCount++
			if next.StressLevel != nil && *next.StressLevel > highStressAbove {
				poorSleepHighStressCount++
			}
		}
	}

	if poorSleepCount >= MinCorrelationEvents {
		ratio := float64(poorSleepHighStressCount) / float64(poorSleepCount)
		if ratio > CorrelationRatioFloor {
			trigger := "poor_sleep"
			patterns = append(patterns, models.Pattern{
				PatternID:    "corr_sleep_stress",
				Type:         models.PatternTypeCorrelation,
				Description:  "Poor sleep nights are followed by higher stress the next day",
				Confidence:   math.Min(ratio, maxCorrelationConfidence),
				Metric:       models.MetricSleepStress,
				Trigger:      &trigger,
				DiscoveredAt: now,
				Occurrences:  poorSleepHighStressCount,
			})
		}
	}

	// Active days followed by good sleep. Unlike the sleep-to-stress scan,
	// this one applies no gap window: every adjacent pair counts.
	activeCount := 0
	activeGoodSleepCount := 0
	for i := 0; i+1 < len(sorted); i++ {
		current, next := sorted[i], sorted[i+1]

		if current.Steps != nil && *current.Steps > activeStepsAbove {
			activeCount++
			if next.SleepQuality != nil && *next.SleepQuality > goodSleepAbove {
				activeGoodSleepCount++
			}
		}
	}

	if activeCount >= MinCorrelationEvents {
		ratio := float64(activeGoodSleepCount) / float64(activeCount)
		if ratio > CorrelationRatioFloor {
			trigger := "high_steps"
			patterns = append(patterns, models.Pattern{
				PatternID:    "corr_steps_sleep",
				Type:         models.PatternTypeCorrelation,
				Description:  "Days with 8,000+ steps lead to better sleep quality",
				Confidence:   math.Min(ratio, maxCorrelationConfidence),
				Metric:       models.MetricStepsSleep,
				Trigger:      &trigger,
				DiscoveredAt: now,
				Occurrences:  activeGoodSleepCount,
			})
		}
	}

	return patterns
}

// formatHour formats an hour (0-23) as a readable 12-hour clock string
func formatHour(hour int) string {
	if hour == 0 {
		return "12 AM"
	} else if hour < 12 {
		return fmt.Sprintf("%d AM", hour)
	} else if hour == 12 {
		return "12 PM"
	} else {
		return fmt.Sprintf("%d PM", hour-12)
	}
}
