package schedule

import (
	"math/rand"
	"testing"
)

func TestEasyIntervalDays_NonDecreasing(t *testing.T) {
	for b := 0; b < len(EasyIntervalDays)-1; b++ {
		if EasyIntervalDays[b] > EasyIntervalDays[b+1] {
			t.Errorf("EasyIntervalDays[%d]=%d > [%d]=%d", b, EasyIntervalDays[b], b+1, EasyIntervalDays[b+1])
		}
	}
}

func TestEasyInterval_Bounds(t *testing.T) {
	if got := EasyInterval(0); got != 1 {
		t.Errorf("EasyInterval(0) = %d, want 1", got)
	}
	if got := EasyInterval(100); got != 180 {
		t.Errorf("EasyInterval(100) = %d, want 180", got)
	}
	// Over-range mastery clamps into bucket 10 rather than indexing out.
	if got := EasyInterval(250); got != 180 {
		t.Errorf("EasyInterval(250) = %d, want 180", got)
	}
}

func TestHardInterval_AlwaysOne(t *testing.T) {
	if got := HardInterval(); got != 1 {
		t.Errorf("HardInterval() = %d, want 1", got)
	}
}

func TestSpreadInterval_WithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for mastery := 0; mastery <= 100; mastery += 5 {
		r := SpreadIntervalDays[mastery/10]
		if mastery == 100 {
			r = SpreadIntervalDays[10]
		}
		for i := 0; i < 50; i++ {
			got := SpreadInterval(mastery, rng)
			if got < r.Min || got > r.Max {
				t.Fatalf("SpreadInterval(%d) = %d, outside [%d,%d]", mastery, got, r.Min, r.Max)
			}
		}
	}
}

func TestSpreadIntervalDays_RangesValid(t *testing.T) {
	for b, r := range SpreadIntervalDays {
		if r.Min < 1 || r.Max < r.Min {
			t.Errorf("SpreadIntervalDays[%d] = %+v is not a valid range", b, r)
		}
	}
}

func TestInterval_PanicsOnInvalidRating(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Interval with an invalid rating must panic")
		}
	}()
	Interval("unknown", 50, rand.New(rand.NewSource(1)))
}
