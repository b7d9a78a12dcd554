// Package viz renders terminal summaries of built symbolic models:
// a lipgloss panel with the headline counts and an asciigraph profile
// of transition density over the clock grid.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/hysym/internal/symbolic"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)
)

// Summary renders the headline panel for a built model.
func Summary(name string, model *symbolic.Model) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n\n")

	row := func(label string, value any) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%v", value)))
		b.WriteString("\n")
	}

	row("modes", model.NumModes())
	row("states", model.NumStates())
	row("inputs", model.NumInputs())
	row("transitions", model.TransitionCount())

	for k := 1; k <= model.NumModes(); k++ {
		tg := model.Clock(k)
		row(fmt.Sprintf("mode %d clock", k), fmt.Sprintf("%d steps, dt=%g", tg.Len(), tg.Dt()))
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// Profile plots the per-time-index transition counts of one mode.
func Profile(model *symbolic.Model, k int) string {
	counts := model.ProfileByTime(k)
	if len(counts) == 0 {
		return labelStyle.Render("no transitions")
	}

	data := make([]float64, len(counts))
	for i, c := range counts {
		data[i] = float64(c)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("transitions per time index (mode %d)", k)),
	)
	return graph
}
