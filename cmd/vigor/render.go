package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	go_json "github.com/goccy/go-json"

	"github.com/marek-a-m/vigor/internal/recovery"
	"github.com/marek-a-m/vigor/internal/ring"
)

var (
	colorGreen  = lipgloss.Color("#16EC06")
	colorYellow = lipgloss.Color("#FFDE00")
	colorRed    = lipgloss.Color("#FF0026")
	colorDim    = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(colorDim)
)

func bandStyle(b recovery.Band) lipgloss.Style {
	switch b {
	case recovery.BandGreen:
		return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	case recovery.BandYellow:
		return lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	}
}

func renderScore(day time.Time, result recovery.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n",
		titleStyle.Render("Recovery "+day.Format(time.DateOnly)),
		bandStyle(result.Band).Render(fmt.Sprintf("%.0f", result.Score)))

	for _, cat := range recovery.Categories() {
		sub, ok := result.SubScores[cat]
		if !ok {
			fmt.Fprintf(&b, "  %s %s\n",
				labelStyle.Render(fmt.Sprintf("%-12s", cat)),
				labelStyle.Render("missing"))
			continue
		}
		fmt.Fprintf(&b, "  %s %5.1f  %s\n",
			labelStyle.Render(fmt.Sprintf("%-12s", cat)),
			sub,
			labelStyle.Render(fmt.Sprintf("weight %.2f", result.AppliedWeights[cat])))
	}

	return b.String()
}

func renderMetrics(m ring.Metrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render("Rings "+m.Date.Format(time.DateOnly)))
	fmt.Fprintf(&b, "  %s %.0f kcal\n", labelStyle.Render("move    "), m.ActiveEnergyKcal)
	fmt.Fprintf(&b, "  %s %.0f min\n", labelStyle.Render("exercise"), m.ExerciseMinutes)
	fmt.Fprintf(&b, "  %s %d hours", labelStyle.Render("stand   "), m.StandHours.Count())
	if hours := m.StandHours.Hours(); len(hours) > 0 {
		fmt.Fprintf(&b, " %s", labelStyle.Render(fmt.Sprintf("%v", hours)))
	}
	b.WriteString("\n")

	return b.String()
}

func writeJSON(w io.Writer, v any) error {
	enc := go_json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
