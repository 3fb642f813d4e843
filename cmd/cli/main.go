package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var host string

var rootCmd = &cobra.Command{
	Use:   "dota2notify-cli",
	Short: "CLI for interacting with the dota2notify service",
}

func main() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "base URL of the running service")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(metricsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
