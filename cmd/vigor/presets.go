package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marek-a-m/vigor/internal/generosity"
)

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the generosity presets and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range generosity.Presets() {
				fmt.Fprintf(out, "%s\n", titleStyle.Render(p.Name))
				fmt.Fprintf(out, "  %s %.2f-%.2f\n", labelStyle.Render("move multiplier "), p.MoveMultiplierLow, p.MoveMultiplierHigh)
				fmt.Fprintf(out, "  %s %.0f%% / %.0f%% / %.0f%% of max HR\n", labelStyle.Render("exercise bands  "),
					p.ExerciseLowPct*100, p.ExerciseModeratePct*100, p.ExerciseHighPct*100)
				fmt.Fprintf(out, "  %s %.0f min per workout\n", labelStyle.Render("workout bonus   "), p.WorkoutBonusMinutes)
				fmt.Fprintf(out, "  %s %.0f bpm over resting\n", labelStyle.Render("stand spike     "), p.StandSpikeBPM)
			}
			return nil
		},
	}
}
