package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gongduet/voquab/internal/catalog"
	"github.com/gongduet/voquab/internal/ui/theme"
)

var importCmd = &cobra.Command{
	Use:   "import <chapter.json>...",
	Short: "Validate and import chapter files into the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, path := range args {
		ch, err := catalog.ParseFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		n, err := s.Catalog().ImportChapter(cmd.Context(), ch)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Printf("%s chapter %d (%s): %d new words, %d total\n",
			theme.Healthy.Render("✓"), ch.Number, ch.ID, n, len(ch.Words))
	}
	return nil
}
