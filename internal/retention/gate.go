package retention

import (
	"time"

	"github.com/gongduet/voquab/internal/vocab"
)

// GateHours holds, per mastery bucket, how many hours must have passed since
// the last correct review before the word may gain further mastery. Higher
// buckets demand longer-term retention, preventing mastery inflation from
// rapid-fire correct answers.
var GateHours = [11]float64{0, 4, 12, 24, 72, 168, 336, 720, 1440, 2880, 4320}

// CanGainMastery reports whether the word has cleared its time gate.
// A word with no correct review yet always passes.
func CanGainMastery(r *vocab.ProgressRecord, now time.Time) bool {
	return r.HoursSinceCorrect(now) >= GateHours[vocab.Bucket(r.MasteryLevel)]
}
