package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// interactive reports whether prompts can be shown at all. Both ends
// matter: stdin may be a pipe while stdout is a terminal, or the other
// way around.
func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// confirmSeason asks before one season number is stamped onto a batch
// that spans several series. Without a terminal the answer is always no,
// so scripted runs never mutate an ambiguous batch.
func confirmSeason(series []string) bool {
	if !interactive() {
		logger.Warn("Refusing to apply one season to several series without confirmation", "series", strings.Join(series, ", "))
		return false
	}

	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Apply one season to several series?").
			Description("\nThe batch spans: " + strings.Join(series, ", ")).
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false
	}
	return confirmed
}
