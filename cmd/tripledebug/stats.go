package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arx-os/tripcore/internal/graph"
)

var statsWatch bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print engine counters",
	Long: `Print the graph's hit/miss/SIMD counters. With --watch, shows a
live-updating view instead of a one-shot print.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsWatch, "watch", false, "live-updating view")
}

func runStats(cmd *cobra.Command, args []string) error {
	if !statsWatch {
		printStats(store.graph.Stats(), store.graph.Len())
		return nil
	}
	p := tea.NewProgram(newStatsModel(store.graph))
	_, err := p.Run()
	return err
}

func printStats(s graph.Stats, length int) {
	fmt.Println(titleStyle.Render("tripcore stats"))
	fmt.Printf("triples: %d\n", length)
	fmt.Printf("hits:    %d\n", s.Hits)
	fmt.Printf("misses:  %d\n", s.Misses)
	fmt.Printf("simd ops: %d\n", s.SIMDOps)
}

// tickMsg drives the live stats view's refresh cadence.
type tickMsg time.Time

type statsModel struct {
	g *graph.Graph
}

func newStatsModel(g *graph.Graph) statsModel {
	return statsModel{g: g}
}

func (m statsModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m statsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tickMsg:
		return m, tick()
	}
	return m, nil
}

func (m statsModel) View() string {
	s := m.g.Stats()
	body := fmt.Sprintf(
		"triples: %d\nhits:    %d\nmisses:  %d\nsimd ops: %d\n\n%s",
		m.g.Len(), s.Hits, s.Misses, s.SIMDOps,
		mutedStyle.Render("press q to quit"),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(titleStyle.Render("tripcore live stats") + "\n\n" + body)
}
