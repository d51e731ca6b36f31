// Package main is the entry point for the headless arena runner
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	envFile    string
	logLevel   string
	redisAddr  string
)

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Swipe & Survive headless runner",
	Long: `Arena drives the Swipe & Survive simulation without a renderer. It plays
scripted runs, batches seeded runs for balance checks and manages player profiles.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "optional .env file read under the process environment")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "redis endpoint for profiles; empty uses an in-process store")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(profileCmd)
}
