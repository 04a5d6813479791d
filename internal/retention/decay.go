// Package retention computes short-term retention ("health") decay and the
// time gate that controls when a word may gain further mastery.
package retention

import (
	"time"

	"github.com/gongduet/voquab/internal/vocab"
)

// DecayRates holds the health lost per day for each mastery bucket.
// Higher mastery decays slower.
var DecayRates = [11]float64{25.0, 20.0, 16.0, 12.0, 9.0, 6.5, 4.5, 3.0, 2.0, 1.0, 0.5}

// HealthStatus bands a current-health value for display and classification.
type HealthStatus string

const (
	HealthCritical  HealthStatus = "critical"
	HealthLow       HealthStatus = "low"
	HealthMedium    HealthStatus = "medium"
	HealthGood      HealthStatus = "good"
	HealthExcellent HealthStatus = "excellent"
)

// CriticalThreshold is the health level below which a word needs rescue.
const CriticalThreshold = 20.0

// HealthSnapshot is the decayed view of a word's retention at one instant.
type HealthSnapshot struct {
	Current     float64      `json:"current_health"`
	Status      HealthStatus `json:"status"`
	ElapsedDays float64      `json:"elapsed_days"`
	DecayRate   float64      `json:"decay_rate"`
}

// Snapshot computes the word's current health from its saved health, mastery
// bucket, and time since last review. Health is never eagerly decayed in
// storage, so callers must take a fresh snapshot whenever "now" matters.
// A never-reviewed word keeps its saved health: no review, no decay clock.
func Snapshot(r *vocab.ProgressRecord, now time.Time) HealthSnapshot {
	saved := vocab.ClampHealth(r.Health)
	if r.LastReviewedAt == nil {
		return HealthSnapshot{
			Current: saved,
			Status:  StatusFor(saved),
		}
	}

	days := r.DaysSinceReview(now)
	rate := DecayRates[vocab.Bucket(r.MasteryLevel)]
	current := saved - days*rate
	if current < 0 {
		current = 0
	}

	return HealthSnapshot{
		Current:     current,
		Status:      StatusFor(current),
		ElapsedDays: days,
		DecayRate:   rate,
	}
}

// StatusFor bands a health value: <20 critical, <40 low, <60 medium,
// <80 good, otherwise excellent.
func StatusFor(health float64) HealthStatus {
	switch {
	case health < CriticalThreshold:
		return HealthCritical
	case health < 40:
		return HealthLow
	case health < 60:
		return HealthMedium
	case health < 80:
		return HealthGood
	default:
		return HealthExcellent
	}
}
