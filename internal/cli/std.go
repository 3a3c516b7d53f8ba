package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zenrename/zenrename/internal/api"
)

var (
	flagStdDir      string
	flagStdFile     string
	flagStdCreative bool
)

var stdCmd = &cobra.Command{
	Use:   "std",
	Short: "Strip noise characters from any file names",
	Args:  cobra.NoArgs,
	RunE:  runStd,
}

func init() {
	stdCmd.Flags().StringVarP(&flagStdDir, "directory", "d", "", "Directory containing the files")
	stdCmd.Flags().StringVarP(&flagStdFile, "file", "f", "", "Single file")
	stdCmd.Flags().BoolVar(&flagStdCreative, "creative", false, "Replace names with generated ones instead of cleaning")

	RootCmd.AddCommand(stdCmd)
}

func runStd(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(flagStdDir, flagStdFile)
	if err != nil {
		return err
	}

	opts := []api.Option{api.WithEvents(handleEvent)}
	if flagStdCreative {
		opts = append(opts, api.WithCreative())
	}

	ops, err := api.Standard(cmd.Context(), target, opts...)
	if err != nil {
		logger.Error("Operation failed", "error", err)
		os.Exit(1)
	}

	printSummary(ops)
	return nil
}
