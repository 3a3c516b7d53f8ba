package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zenrename/zenrename/internal/api"
)

var (
	flagMovieDir    string
	flagMovieFile   string
	flagMovieConfig string
)

var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Clean up movie file names",
	Args:  cobra.NoArgs,
	RunE:  runMovie,
}

func init() {
	movieCmd.Flags().StringVarP(&flagMovieDir, "directory", "d", "", "Directory containing the movies")
	movieCmd.Flags().StringVarP(&flagMovieFile, "file", "f", "", "Single movie file")
	movieCmd.Flags().StringVarP(&flagMovieConfig, "config", "c", "", "JSON config overriding extensions")

	RootCmd.AddCommand(movieCmd)
}

func runMovie(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(flagMovieDir, flagMovieFile)
	if err != nil {
		return err
	}

	opts := []api.Option{api.WithEvents(handleEvent)}
	if flagMovieConfig != "" {
		opts = append(opts, api.WithConfig(flagMovieConfig))
	}

	ops, err := api.Movies(cmd.Context(), target, opts...)
	if err != nil {
		logger.Error("Operation failed", "error", err)
		os.Exit(1)
	}

	printSummary(ops)
	return nil
}
