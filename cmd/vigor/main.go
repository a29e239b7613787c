package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/marek-a-m/vigor/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "vigor",
		Short:   "Recovery scores and activity rings from WHOOP data",
		Version: version.Get(),
	}

	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(transformCmd())
	rootCmd.AddCommand(synthCmd())
	rootCmd.AddCommand(backfillCmd())
	rootCmd.AddCommand(presetsCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
