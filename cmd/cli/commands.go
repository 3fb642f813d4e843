package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func performGetRequest(path string) error {
	resp, err := http.Get(host + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	fmt.Printf("Status: %s\n%s\n", resp.Status, body)
	return nil
}

func performPostRequest(path string) error {
	resp, err := http.Post(host+path, "application/json", nil)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	fmt.Printf("Status: %s\n%s\n", resp.Status, body)
	return nil
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check service health",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Trigger one match check cycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/check")
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/users")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Fetch recent matches for a player",
	RunE: func(cmd *cobra.Command, args []string) error {
		player, _ := cmd.Flags().GetString("player")
		limit, _ := cmd.Flags().GetString("limit")
		if player == "" {
			return performGetRequest("/matches/default")
		}
		path := "/matches?playerId=" + url.QueryEscape(player)
		if limit != "" {
			path += "&limit=" + url.QueryEscape(limit)
		}
		return performGetRequest(path)
	},
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send an ad-hoc notification to a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		message, _ := cmd.Flags().GetString("message")
		if user == "" || message == "" {
			return fmt.Errorf("--user and --message are required")
		}
		path := "/notify?userId=" + url.QueryEscape(user) + "&message=" + url.QueryEscape(message)
		return performPostRequest(path)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Fetch service metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func init() {
	matchesCmd.Flags().String("player", "", "player identifier")
	matchesCmd.Flags().String("limit", "", "number of matches to fetch")
	notifyCmd.Flags().String("user", "", "user identifier")
	notifyCmd.Flags().String("message", "", "message to send")
}
