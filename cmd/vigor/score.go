package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marek-a-m/vigor/internal/health"
	"github.com/marek-a-m/vigor/internal/whoop"
)

func scoreCmd() *cobra.Command {
	var (
		sleepHours float64
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "score <payload.json>",
		Short: "Compute the recovery score for a day's payload",
		Long: `Compute the recovery score for a day's payload.

The payload's readings are ingested into the baseline store first, so
scoring a day also advances the baseline. Sleep duration is not part of
the payload and is supplied with --sleep-hours.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeAll, err := setup(cmd.Context(), "")
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

			if err := svc.IngestPayload(cmd.Context(), payload); err != nil {
				return err
			}

			current := currentMetrics(payload)
			if cmd.Flags().Changed("sleep-hours") {
				current.SleepHours = health.Some(sleepHours)
			}

			result, err := svc.ScoreDay(cmd.Context(), payload.Date, current)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderScore(payload.Date, result))
			return nil
		},
	}

	cmd.Flags().Float64Var(&sleepHours, "sleep-hours", 0, "total sleep duration in hours")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of the styled summary")
	return cmd
}

// currentMetrics lifts the day's readings out of a payload. Sleep is absent
// unless supplied by flag; HRV and skin temperature require a scored
// recovery record.
func currentMetrics(payload *whoop.DailyPayload) health.Metrics {
	var m health.Metrics
	if payload.RestingHeartRate > 0 {
		m.RestingHR = health.Some(payload.RestingHeartRate)
	}
	if r := payload.Recovery; r != nil && r.ScoreState == whoop.ScoreStateScored {
		if r.HRVRmssdMilli > 0 {
			m.HRV = health.Some(r.HRVRmssdMilli)
		}
		if r.SkinTempCelsius > 0 {
			m.SkinTemp = health.Some(r.SkinTempCelsius)
		}
	}
	return m
}
