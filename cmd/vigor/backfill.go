package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func backfillCmd() *cobra.Command {
	var presetName string

	cmd := &cobra.Command{
		Use:   "backfill <dir>",
		Short: "Ingest and transform every payload file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeAll, err := setup(cmd.Context(), presetName)
			if err != nil {
				return err
			}
			defer closeAll()

			result, err := svc.Backfill(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Processed %d payloads (%d skipped)\n",
				result.Processed, result.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", "", "generosity preset (conservative, balanced, generous)")
	return cmd
}
