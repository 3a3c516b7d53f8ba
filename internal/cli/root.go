// Package cli wires the zenrename command tree: flag parsing, the styled
// logger and the interactive prompts. Core packages report through events;
// everything printed happens here.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zenrename/zenrename/internal/types"
)

var (
	flagVerbose bool
	flagQuiet   bool

	logger *log.Logger
)

var RootCmd = &cobra.Command{
	Use:           "zenrename",
	Short:         "Rename media files into a standardized naming scheme",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func Execute() {
	fmt.Println()
	if err := RootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error(err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		RootCmd.Usage()
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")
	RootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress output except errors")

	// Default logger setup (before flags parse)
	logger = log.New(os.Stdout)
	configureStyles()

	colorizeHelp(RootCmd)
}

func configureStyles() {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Foreground(lipgloss.Color("63"))

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ").
		Bold(true).
		Foreground(lipgloss.Color("86"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ").
		Bold(true).
		Foreground(lipgloss.Color("192"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))

	logger.SetStyles(styles)
}

func setupLogger() {
	if flagQuiet {
		logger.SetLevel(log.ErrorLevel)
	} else if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// handleEvent maps core progress events onto the logger. Plain info
// events only show up in verbose mode.
func handleEvent(e types.Event) {
	switch e.Type {
	case types.EventSuccess:
		logger.Info(e.Message)
	case types.EventWarning:
		logger.Warn(e.Message)
	case types.EventError:
		logger.Error(e.Message)
	default:
		logger.Debug(e.Message)
	}
}

// resolveTarget enforces the directory XOR file contract shared by the
// rename commands.
func resolveTarget(dir, file string) (string, error) {
	switch {
	case dir != "" && file != "":
		return "", fmt.Errorf("--directory and --file are mutually exclusive")
	case dir == "" && file == "":
		return "", fmt.Errorf("either --directory or --file is required")
	case dir != "":
		return dir, nil
	default:
		return file, nil
	}
}

func printSummary(ops []types.RenameOperation) {
	var renamed, skipped, failed int
	for _, op := range ops {
		switch op.Status {
		case types.StatusSuccess:
			renamed++
		case types.StatusSkipped:
			skipped++
		case types.StatusFailed:
			failed++
		}
	}

	logger.Info("Summary",
		"renamed", lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Render(fmt.Sprint(renamed)),
		"skipped", lipgloss.NewStyle().Foreground(lipgloss.Color("192")).Render(fmt.Sprint(skipped)),
		"failed", lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Render(fmt.Sprint(failed)),
	)
}
