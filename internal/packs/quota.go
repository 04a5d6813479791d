package packs

import "math"

// Scenario names the quota heuristic that matched the pool's aggregate state.
type Scenario string

const (
	// ScenarioRescue fires when critical words crowd the package: over 30%
	// of the target size is decayed below critical.
	ScenarioRescue Scenario = "rescue"
	// ScenarioExpansion fires when little needs repair and plenty of new
	// vocabulary is waiting: push hard on new words.
	ScenarioExpansion Scenario = "expansion"
	// ScenarioLargeCorpus and ScenarioModerateCorpus scale the new-word
	// share to how much unexplored vocabulary remains.
	ScenarioLargeCorpus    Scenario = "large_corpus"
	ScenarioModerateCorpus Scenario = "moderate_corpus"
	// ScenarioScarcity fires when almost no new vocabulary remains:
	// no new-word quota at all.
	ScenarioScarcity Scenario = "scarcity"
	// ScenarioBalanced is the fallback mix.
	ScenarioBalanced Scenario = "balanced"
)

// Quotas holds the per-category share of the package, summing to 1.0.
type Quotas struct {
	Critical     float64
	MasteryReady float64
	Exposure     float64
	New          float64
}

// PoolState aggregates the classified pool for quota derivation.
type PoolState struct {
	CriticalCount     int
	MasteryReadyCount int
	ExposureCount     int
	NewAvailable      int
}

// Heuristic trigger thresholds.
const (
	rescueCriticalShare    = 0.30
	expansionCriticalShare = 0.10
	expansionMasteryShare  = 0.20
	expansionNewFloor      = 100
	largeCorpusNewFloor    = 200
	moderateCorpusNewFloor = 50
)

// DeriveQuotas picks the first matching scenario for the pool state and
// target size. The scenarios are mutually exclusive by evaluation order.
func DeriveQuotas(st PoolState, target int) (Quotas, Scenario) {
	t := float64(target)
	switch {
	case float64(st.CriticalCount) > rescueCriticalShare*t:
		return Quotas{Critical: 0.50, MasteryReady: 0.20, Exposure: 0.20, New: 0.10}, ScenarioRescue
	case float64(st.CriticalCount) < expansionCriticalShare*t &&
		float64(st.MasteryReadyCount) < expansionMasteryShare*t &&
		st.NewAvailable > expansionNewFloor:
		return Quotas{Critical: 0.10, MasteryReady: 0.20, Exposure: 0.20, New: 0.50}, ScenarioExpansion
	case st.NewAvailable > largeCorpusNewFloor:
		return Quotas{Critical: 0.20, MasteryReady: 0.25, Exposure: 0.25, New: 0.30}, ScenarioLargeCorpus
	case st.NewAvailable > moderateCorpusNewFloor:
		return Quotas{Critical: 0.25, MasteryReady: 0.30, Exposure: 0.25, New: 0.20}, ScenarioModerateCorpus
	case st.NewAvailable < moderateCorpusNewFloor:
		return Quotas{Critical: 0.30, MasteryReady: 0.40, Exposure: 0.30, New: 0}, ScenarioScarcity
	default:
		return Quotas{Critical: 0.25, MasteryReady: 0.35, Exposure: 0.25, New: 0.15}, ScenarioBalanced
	}
}

// Counts converts quota percentages to integer word counts for a target
// package size, rounding each share to the nearest whole word.
func (q Quotas) Counts(target int) (critical, mastery, exposure, newWords int) {
	t := float64(target)
	return int(math.Round(q.Critical * t)),
		int(math.Round(q.MasteryReady * t)),
		int(math.Round(q.Exposure * t)),
		int(math.Round(q.New * t))
}

// Sum returns the total of the four shares. Always 1.0 for derived quotas;
// exposed for verification.
func (q Quotas) Sum() float64 {
	return q.Critical + q.MasteryReady + q.Exposure + q.New
}
