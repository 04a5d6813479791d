package vocab

// MaxBucket is the highest mastery bucket (mastery 95–100 lands here).
const MaxBucket = 10

// Bucket maps a mastery level to its bucket 0..10. Mastery is clamped to
// [0, 100] first so that a level of exactly 100 lands in bucket 10, not 11.
// All table lookups (decay rates, gate hours, intervals) go through here.
func Bucket(mastery int) int {
	if mastery < 0 {
		mastery = 0
	}
	if mastery > 100 {
		mastery = 100
	}
	b := mastery / 10
	if b > MaxBucket {
		b = MaxBucket
	}
	return b
}

// ClampMastery bounds a mastery level to the valid [0, 100] range.
func ClampMastery(mastery int) int {
	if mastery < 0 {
		return 0
	}
	if mastery > 100 {
		return 100
	}
	return mastery
}

// ClampHealth bounds a health value to the valid [0, 100] range.
func ClampHealth(health float64) float64 {
	if health < 0 {
		return 0
	}
	if health > 100 {
		return 100
	}
	return health
}
