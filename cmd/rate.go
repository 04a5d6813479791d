package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gongduet/voquab/internal/schedule"
	"github.com/gongduet/voquab/internal/store"
	"github.com/gongduet/voquab/internal/ui/theme"
	"github.com/gongduet/voquab/internal/vocab"
)

var rateCmd = &cobra.Command{
	Use:   "rate <lemma> <easy|medium|hard|again>",
	Short: "Record a rating for a word and reschedule it",
	Args:  cobra.ExactArgs(2),
	RunE:  runRate,
}

func runRate(cmd *cobra.Command, args []string) error {
	lemma, rating := args[0], vocab.Rating(args[1])
	if !rating.Valid() {
		return fmt.Errorf("unknown rating %q (want easy, medium, hard, or again)", args[1])
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
	lemmas, err := s.Catalog().Lemmas(ctx)
	if err != nil {
		return err
	}

	var rec *vocab.ProgressRecord
	for _, r := range pool {
		if lemmas[r.WordID] == lemma {
			rec = r
			break
		}
	}
	if rec == nil {
		return fmt.Errorf("word %q is not in the catalog", lemma)
	}

	now := time.Now()
	out := schedule.Apply(rec, rating, now, newRng(cmd))

	if err := s.Progress().Save(ctx, rec); err != nil {
		return err
	}
	if err := s.Events().AppendReview(ctx, store.ReviewEvent{
		WordID:        rec.WordID,
		Rating:        out.Rating,
		MasteryBefore: out.MasteryBefore,
		MasteryAfter:  out.MasteryAfter,
		IntervalDays:  out.IntervalDays,
		ReviewedAt:    now,
	}); err != nil {
		return err
	}

	mastery := fmt.Sprintf("mastery %d", out.MasteryAfter)
	if out.MasteryAfter > out.MasteryBefore {
		mastery = theme.Healthy.Render(fmt.Sprintf("mastery %d → %d", out.MasteryBefore, out.MasteryAfter))
	} else if out.MasteryAfter < out.MasteryBefore {
		mastery = theme.Critical.Render(fmt.Sprintf("mastery %d → %d", out.MasteryBefore, out.MasteryAfter))
	} else if !out.GatePassed && rating.Correct() {
		mastery += theme.Hint.Render(" (time gate not yet open)")
	}
	fmt.Printf("%s · %s · next review in %dd (%s)\n",
		lemma, mastery, out.IntervalDays, out.NextDueAt.Format("2006-01-02"))
	return nil
}
