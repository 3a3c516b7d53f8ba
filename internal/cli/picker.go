package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/zenrename/zenrename/internal/types"
)

// candidatesMsg delivers the search results to the Bubble Tea model.
type candidatesMsg struct {
	candidates []types.SearchCandidate
}

// candidatePicker is a Bubble Tea model that lets the user choose which
// search result actually is their series.
type candidatePicker struct {
	pending    []types.SearchCandidate
	candidates []types.SearchCandidate
	cursor     int
	selected   types.SearchCandidate
	loaded     bool
	aborted    bool
	chosen     bool
	filter     string

	// Visible window for scrolling
	windowSize int

	spinner spinner.Model
}

func newCandidatePicker(candidates []types.SearchCandidate) candidatePicker {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = StyleCommand

	return candidatePicker{
		pending:    candidates,
		windowSize: 12,
		spinner:    s,
	}
}

func (m candidatePicker) Init() tea.Cmd {
	pending := m.pending
	return tea.Batch(
		func() tea.Msg { return candidatesMsg{candidates: pending} },
		m.spinner.Tick,
	)
}

func (m candidatePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case candidatesMsg:
		m.candidates = msg.candidates
		m.loaded = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		filtered := m.filteredCandidates()

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(filtered) > 0 && m.cursor < len(filtered) {
				m.chosen = true
				m.selected = filtered[m.cursor]
				return m, tea.Quit
			}

		case tea.KeyUp, tea.KeyShiftTab:
			if m.cursor > 0 {
				m.cursor--
			}

		case tea.KeyDown, tea.KeyTab:
			if m.cursor < len(filtered)-1 {
				m.cursor++
			}

		case tea.KeyRunes:
			m.filter += string(msg.Runes)
			m.cursor = 0

		case tea.KeyBackspace:
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.cursor = 0
			}
		}
	}

	return m, nil
}

func (m candidatePicker) View() string {
	var b strings.Builder

	// Title
	title := StyleHeader.Render("Select your series")

	// Status indicator
	var status string
	filtered := m.filteredCandidates()
	if m.loaded {
		status = StyleDim.Render(fmt.Sprintf("  %d results", len(m.candidates)))
	} else {
		status = StyleCommand.Render(fmt.Sprintf("  %s searching…", m.spinner.View()))
	}
	b.WriteString(title + status + "\n")

	// Filter bar
	if m.filter != "" {
		b.WriteString(StyleDim.Render("  filter: ") + StyleCommand.Render(m.filter) + "\n")
	}
	b.WriteString("\n")

	if len(filtered) == 0 {
		if m.loaded {
			b.WriteString(StyleDim.Render("  No results found.") + "\n")
		} else {
			b.WriteString(StyleDim.Render("  Waiting for results…") + "\n")
		}
	} else {
		// Calculate visible window
		start := 0
		end := len(filtered)
		if end > m.windowSize {
			half := m.windowSize / 2
			start = m.cursor - half
			if start < 0 {
				start = 0
			}
			end = start + m.windowSize
			if end > len(filtered) {
				end = len(filtered)
				start = end - m.windowSize
			}
		}

		if start > 0 {
			b.WriteString(StyleDim.Render(fmt.Sprintf("  ↑ %d more", start)) + "\n")
		}

		selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCommand)
		tagStyle := StyleDim

		for i := start; i < end; i++ {
			c := filtered[i]

			label := c.Title
			if c.Year > 0 {
				label += fmt.Sprintf(" (%d)", c.Year)
			}
			tag := c.Type
			if c.Episodes > 0 {
				if tag != "" {
					tag += ", "
				}
				tag += fmt.Sprintf("%d eps", c.Episodes)
			}
			if tag != "" {
				tag = tagStyle.Render(" [" + tag + "]")
			}

			if i == m.cursor {
				b.WriteString("  " + selectedStyle.Render("> "+label) + tag + "\n")
			} else {
				b.WriteString("    " + label + tag + "\n")
			}
		}

		if end < len(filtered) {
			b.WriteString(StyleDim.Render(fmt.Sprintf("  ↓ %d more", len(filtered)-end)) + "\n")
		}
	}

	b.WriteString("\n")
	helpText := StyleDim.Render("  ↑/↓ navigate • enter select • esc back • ctrl+c quit")
	if m.filter == "" {
		helpText = StyleDim.Render("  ↑/↓ navigate • ") + StyleCommand.Render("type to filter") + StyleDim.Render(" • enter select • esc back")
	}
	b.WriteString(helpText + "\n")

	return b.String()
}

// filteredCandidates returns candidates matching the current filter.
func (m candidatePicker) filteredCandidates() []types.SearchCandidate {
	if m.filter == "" {
		return m.candidates
	}
	lower := strings.ToLower(m.filter)
	var out []types.SearchCandidate
	for _, c := range m.candidates {
		if strings.Contains(strings.ToLower(c.Title), lower) ||
			strings.Contains(strings.ToLower(c.Type), lower) {
			out = append(out, c)
		}
	}
	return out
}

// pickCandidate runs the interactive picker over the search results.
// Returns ErrUserAborted on esc or ctrl+c, which makes the fetcher fall
// back to the first result.
func pickCandidate(ctx context.Context, candidates []types.SearchCandidate) (types.SearchCandidate, error) {
	picker := newCandidatePicker(candidates)

	p := tea.NewProgram(picker, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return types.SearchCandidate{}, fmt.Errorf("series picker failed: %w", err)
	}

	m := finalModel.(candidatePicker)

	if m.chosen {
		return m.selected, nil
	}
	return types.SearchCandidate{}, huh.ErrUserAborted
}
