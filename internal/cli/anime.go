package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/zenrename/zenrename/internal/api"
	"github.com/zenrename/zenrename/internal/types"
)

var (
	flagAnimeDir    string
	flagAnimeFile   string
	flagSeason      int
	flagOnline      bool
	flagTitle       string
	flagAnimeConfig string
)

var animeCmd = &cobra.Command{
	Use:   "anime",
	Short: "Rename anime episodes to a canonical form",
	Args:  cobra.NoArgs,
	RunE:  runAnime,
}

func init() {
	animeCmd.Flags().StringVarP(&flagAnimeDir, "directory", "d", "", "Directory containing the episodes")
	animeCmd.Flags().StringVarP(&flagAnimeFile, "file", "f", "", "Single episode file")
	animeCmd.Flags().IntVarP(&flagSeason, "season", "s", 0, "Season for files whose name has none (0 = no season)")
	animeCmd.Flags().BoolVar(&flagOnline, "online", false, "Fetch episode titles from MyAnimeList")
	animeCmd.Flags().StringVar(&flagTitle, "title", "", "Series title override for the whole batch")
	animeCmd.Flags().StringVarP(&flagAnimeConfig, "config", "c", "", "JSON config overriding extensions and patterns")

	RootCmd.AddCommand(animeCmd)
}

func runAnime(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(flagAnimeDir, flagAnimeFile)
	if err != nil {
		return err
	}

	opts := []api.Option{
		api.WithSeason(flagSeason),
		api.WithEvents(handleEvent),
		api.WithConfirm(confirmSeason),
	}
	if flagTitle != "" {
		opts = append(opts, api.WithTitle(flagTitle))
	}
	if flagAnimeConfig != "" {
		opts = append(opts, api.WithConfig(flagAnimeConfig))
	}
	if flagOnline {
		opts = append(opts, api.WithOnline())
		if interactive() {
			opts = append(opts, api.WithPicker(pickCandidate), api.WithProgress())
		}
	}

	ops, err := api.Anime(cmd.Context(), target, opts...)
	if err != nil {
		var declined types.ErrAmbiguousSeason
		if errors.As(err, &declined) {
			logger.Info("Nothing renamed")
			return nil
		}
		logger.Error("Operation failed", "error", err)
		os.Exit(1)
	}

	printSummary(ops)
	return nil
}
