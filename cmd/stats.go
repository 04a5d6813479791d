package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gongduet/voquab/internal/retention"
	"github.com/gongduet/voquab/internal/ui/theme"
	"github.com/gongduet/voquab/internal/vocab"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show pool-wide retention and mastery statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	pool, err := s.Progress().Pool(ctx)
	if err != nil {
		return err
	}
	if len(pool) == 0 {
		fmt.Println(theme.Hint.Render("No vocabulary yet — run `voquab import` first."))
		return nil
	}

	now := time.Now()
	bands := map[retention.HealthStatus]int{}
	buckets := [11]int{}
	unseen, due, leeches := 0, 0, 0
	for _, r := range pool {
		snap := retention.Snapshot(r, now)
		bands[snap.Status]++
		buckets[vocab.Bucket(r.MasteryLevel)]++
		if r.Unseen() {
			unseen++
		}
		if r.NextDueAt != nil && !now.Before(*r.NextDueAt) {
			due++
		}
		if r.FailedRecently {
			leeches++
		}
	}

	fmt.Println(theme.Title.Render("Vocabulary stats"),
		theme.Subtitle.Render(fmt.Sprintf("%d words tracked", len(pool))))
	fmt.Printf("unseen %d · due %d · struggling %s\n\n",
		unseen, due, theme.Critical.Render(fmt.Sprintf("%d", leeches)))

	fmt.Println(theme.Body.Render("Retention"))
	order := []retention.HealthStatus{retention.HealthCritical, retention.HealthLow,
		retention.HealthMedium, retention.HealthGood, retention.HealthExcellent}
	for _, st := range order {
		fmt.Printf("  %-10s %d\n", st, bands[st])
	}

	fmt.Println(theme.Body.Render("\nMastery buckets"))
	for b, n := range buckets {
		if n == 0 {
			continue
		}
		fmt.Printf("  %3d–%-3d %d\n", b*10, min(b*10+9, 100), n)
	}
	return nil
}
