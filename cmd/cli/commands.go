package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var season string

func init() {
	standingsCmd.Flags().StringVar(&season, "season", "", "Limit standings to a calendar year")
	notifyCmd.Flags().StringVar(&season, "season", "", "Limit standings to a calendar year")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the tracked players and their handicaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the full match history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the known courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/courses")
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the head-to-head standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/standings" + seasonQuery())
	},
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Post the standings to the Slack channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/standings/notify"+seasonQuery(), nil)
	},
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a round entry from a JSON payload on stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/rounds", os.Stdin)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func seasonQuery() string {
	if season == "" {
		return ""
	}
	return "?season=" + season
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, body io.Reader) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	if body == nil {
		body = strings.NewReader("")
	}
	resp, err := http.Post(url, "application/json", body)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
