// Package waypoint groups a composed package into named sequential stages
// for progress display.
package waypoint

import (
	"github.com/gongduet/voquab/internal/packs"
	"github.com/gongduet/voquab/internal/vocab"
)

// Status is a waypoint's place in the session's progression. The builder
// assigns only the initial statuses; advancing "active" as stages complete
// is the caller's job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Waypoint is one named stage of a package.
type Waypoint struct {
	Name      string         `json:"name"`
	Icon      string         `json:"icon"`
	Category  vocab.Category `json:"category"`
	Total     int            `json:"total"`
	Completed int            `json:"completed"`
	Status    Status         `json:"status"`
	WordIDs   []string       `json:"word_ids"`
}

// traversalOrder fixes the stage sequence: critical first for awareness,
// then discovery, then the mastery and reinforcement work.
var traversalOrder = [4]vocab.Category{
	vocab.CategoryCritical,
	vocab.CategoryNew,
	vocab.CategoryMasteryReady,
	vocab.CategoryExposure,
}

var displayNames = map[vocab.Category]struct {
	name string
	icon string
}{
	vocab.CategoryCritical:     {"Rescue", "🚨"},
	vocab.CategoryNew:          {"Discover", "✨"},
	vocab.CategoryMasteryReady: {"Level Up", "⬆️"},
	vocab.CategoryExposure:     {"Reinforce", "🔁"},
}

// fallback covers a package that produced no category waypoints.
var fallback = Waypoint{Name: "Review", Icon: "📖", Status: StatusActive}

// Build groups the package's words by category into waypoints, in the fixed
// traversal order, skipping empty categories. The second waypoint emitted
// starts active: a critical stage, when present, is surfaced first for
// awareness but actual review begins at the second stage. With a single
// waypoint that one is active; an empty package yields the fallback
// waypoint alone.
func Build(pkg *packs.Package) []Waypoint {
	var out []Waypoint
	for _, cat := range traversalOrder {
		var ids []string
		for _, item := range pkg.Items {
			if item.Category == cat {
				ids = append(ids, item.Record.WordID)
			}
		}
		if len(ids) == 0 {
			continue
		}
		d := displayNames[cat]
		out = append(out, Waypoint{
			Name:     d.name,
			Icon:     d.icon,
			Category: cat,
			Total:    len(ids),
			Status:   StatusPending,
			WordIDs:  ids,
		})
	}

	if len(out) == 0 {
		wp := fallback
		wp.Total = pkg.Size()
		for _, item := range pkg.Items {
			wp.WordIDs = append(wp.WordIDs, item.Record.WordID)
		}
		return []Waypoint{wp}
	}

	active := 1
	if len(out) == 1 {
		active = 0
	}
	out[active].Status = StatusActive
	return out
}
