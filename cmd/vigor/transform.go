package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marek-a-m/vigor/internal/whoop"
)

func transformCmd() *cobra.Command {
	var (
		presetName string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "transform <payload.json>",
		Short: "Turn a day's payload into ring metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeAll, err := setup(cmd.Context(), presetName)
			if err != nil {
				return err
			}
			defer closeAll()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			payload, err := whoop.DecodeDailyPayload(f)
			if err != nil {
				return err
			}

			metrics, err := svc.TransformDay(cmd.Context(), payload)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), metrics)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMetrics(metrics))
			return nil
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", "", "generosity preset (conservative, balanced, generous)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of the styled summary")
	return cmd
}

func synthCmd() *cobra.Command {
	var presetName string

	cmd := &cobra.Command{
		Use:   "synth <payload.json>",
		Short: "Synthesize discrete activity samples for a day's payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeAll, err := setup(cmd.Context(), presetName)
			if err != nil {
				return err
			}
			defer closeAll()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			payload, err := whoop.DecodeDailyPayload(f)
			if err != nil {
				return err
			}

			samples, err := svc.SynthesizeDay(cmd.Context(), payload)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), samples)
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", "", "generosity preset (conservative, balanced, generous)")
	return cmd
}
