package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gongduet/voquab/internal/packs"
	"github.com/gongduet/voquab/internal/priority"
	"github.com/gongduet/voquab/internal/ui/theme"
	"github.com/gongduet/voquab/internal/waypoint"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose a curated review package with staged waypoints",
	RunE:  runCompose,
}

func init() {
	composeCmd.Flags().Int("size", 0, "Package size (overrides config)")
	composeCmd.Flags().Int64("seed", 0, "Random seed (0 = time-based)")
}

func runCompose(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
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
	corpus, err := s.Catalog().CorpusSize(ctx)
	if err != nil {
		return err
	}
	lemmas, err := s.Catalog().Lemmas(ctx)
	if err != nil {
		return err
	}

	size := cfg.PackageSize
	if n, _ := cmd.Flags().GetInt("size"); n > 0 {
		size = n
	}

	now := time.Now()
	pkg := packs.Compose(pool, packs.Input{
		Target:     size,
		CorpusSize: corpus,
		Scoring: priority.Options{
			ChapterFocus:   cfg.ChapterFocus,
			FocusChapterID: cfg.FocusChapterID,
		},
	}, now, newRng(cmd))

	if pkg.Size() == 0 {
		fmt.Println(theme.Hint.Render("Not enough data for a package yet — review some words first."))
		return nil
	}

	fmt.Println(theme.Title.Render("Review package"),
		theme.Subtitle.Render(fmt.Sprintf("%d words · scenario: %s", pkg.Size(), pkg.Scenario)))

	for _, wp := range waypoint.Build(pkg) {
		name := fmt.Sprintf("%s %s", wp.Icon, wp.Name)
		if wp.Status == waypoint.StatusActive {
			name = theme.Active.Render(name + " ← start here")
		}
		fmt.Printf("\n%s (%d words)\n", name, wp.Total)
		for _, id := range wp.WordIDs {
			fmt.Printf("  · %s\n", lemmas[id])
		}
	}
	return nil
}
