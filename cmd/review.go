package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/gongduet/voquab/internal/priority"
	"github.com/gongduet/voquab/internal/retention"
	"github.com/gongduet/voquab/internal/session"
	"github.com/gongduet/voquab/internal/ui/theme"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Build a prioritized review session",
	RunE:  runReview,
}

func init() {
	reviewCmd.Flags().Int("size", 0, "Session size (overrides config)")
	reviewCmd.Flags().String("chapter", "", "Focus scoring on one chapter id")
	reviewCmd.Flags().Int64("seed", 0, "Random seed (0 = time-based)")
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	pool, err := s.Progress().Pool(cmd.Context())
	if err != nil {
		return err
	}
	lemmas, err := s.Catalog().Lemmas(cmd.Context())
	if err != nil {
		return err
	}
	if len(pool) == 0 {
		fmt.Println(theme.Hint.Render("No vocabulary yet — run `voquab import` first."))
		return nil
	}

	size := cfg.SessionSize
	if n, _ := cmd.Flags().GetInt("size"); n > 0 {
		size = n
	}
	scoring := priority.Options{
		ChapterFocus:   cfg.ChapterFocus,
		FocusChapterID: cfg.FocusChapterID,
	}
	if ch, _ := cmd.Flags().GetString("chapter"); ch != "" {
		scoring = priority.Options{ChapterFocus: true, FocusChapterID: ch}
	}

	// One now and one rng for the whole pass.
	now := time.Now()
	q := session.BuildQueue(pool, session.Selection{
		Size:    size,
		Shuffle: !cfg.NoShuffle,
		Scoring: scoring,
	}, now, newRng(cmd))

	st := q.Stats()
	fmt.Println(theme.Title.Render("Review session"), theme.Subtitle.Render(q.ID))
	fmt.Printf("%d words · %s critical · %s low · %d new · avg priority %.0f\n",
		st.Total,
		theme.Critical.Render(fmt.Sprintf("%d", st.CriticalCount())),
		theme.Low.Render(fmt.Sprintf("%d", st.LowCount())),
		st.NewCount, st.AveragePriority)

	for i, e := range q.Entries() {
		health := fmt.Sprintf("%3.0f", e.Score.CurrentHealth)
		switch e.Score.Status {
		case retention.HealthCritical:
			health = theme.Critical.Render(health)
		case retention.HealthLow:
			health = theme.Low.Render(health)
		default:
			health = theme.Healthy.Render(health)
		}
		fmt.Printf("%3d. %-24s health %s  priority %3d\n",
			i+1, lemmas[e.Record.WordID], health, e.Score.Total)
	}
	return nil
}

func newRng(cmd *cobra.Command) *rand.Rand {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
