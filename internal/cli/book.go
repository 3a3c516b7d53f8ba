package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zenrename/zenrename/internal/api"
)

var (
	flagBookDir    string
	flagBookFile   string
	flagBookConfig string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Clean up book file names",
	Args:  cobra.NoArgs,
	RunE:  runBook,
}

func init() {
	bookCmd.Flags().StringVarP(&flagBookDir, "directory", "d", "", "Directory containing the books")
	bookCmd.Flags().StringVarP(&flagBookFile, "file", "f", "", "Single book file")
	bookCmd.Flags().StringVarP(&flagBookConfig, "config", "c", "", "JSON config overriding extensions")

	RootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(flagBookDir, flagBookFile)
	if err != nil {
		return err
	}

	opts := []api.Option{api.WithEvents(handleEvent)}
	if flagBookConfig != "" {
		opts = append(opts, api.WithConfig(flagBookConfig))
	}

	ops, err := api.Books(cmd.Context(), target, opts...)
	if err != nil {
		logger.Error("Operation failed", "error", err)
		os.Exit(1)
	}

	printSummary(ops)
	return nil
}
