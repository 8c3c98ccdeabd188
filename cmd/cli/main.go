package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/gobalance/internal/adapter/http/dto"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gobalance-cli",
		Short: "GoBalance CLI tool",
		Long:  `A command line interface for requesting trial balance reports from the GoBalance API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoBalance API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 90*time.Second, "Request timeout")

	rootCmd.AddCommand(trialBalanceCmd())
	rootCmd.AddCommand(healthCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func trialBalanceCmd() *cobra.Command {
	var (
		reportType    string
		ledgers       []string
		fromDate      string
		toDate        string
		fromAccount   string
		toAccount     string
		level         int
		withSubledger bool
		withSectors   bool
		withAverage   bool
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Build a trial balance report",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse("2006-01-02", fromDate)
			if err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}
			to, err := time.Parse("2006-01-02", toDate)
			if err != nil {
				return fmt.Errorf("invalid --to date: %w", err)
			}

			req := dto.TrialBalanceRequest{
				Type:                 reportType,
				Ledgers:              ledgers,
				FromAccount:          fromAccount,
				ToAccount:            toAccount,
				Level:                level,
				WithSubledgerAccount: withSubledger,
				WithSectorization:    withSectors,
				WithAverageBalance:   withAverage,
				InitialPeriod: dto.PeriodRequest{
					FromDate: from,
					ToDate:   to,
				},
			}

			report, err := requestTrialBalance(req)
			if err != nil {
				return err
			}

			if asJSON {
				printJSON(report)
				return nil
			}

			printReport(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&reportType, "type", "Traditional", "Report type")
	cmd.Flags().StringSliceVar(&ledgers, "ledgers", nil, "Ledger IDs to include")
	cmd.Flags().StringVar(&fromDate, "from", "", "Period start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "Period end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&fromAccount, "from-account", "", "First account number to include")
	cmd.Flags().StringVar(&toAccount, "to-account", "", "Last account number to include")
	cmd.Flags().IntVar(&level, "level", 0, "Deepest account level to show (0 = all)")
	cmd.Flags().BoolVar(&withSubledger, "subledgers", false, "Break balances out by subledger account")
	cmd.Flags().BoolVar(&withSectors, "sectors", false, "Summarize by sector hierarchy")
	cmd.Flags().BoolVar(&withAverage, "average", false, "Include average balances")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON response")

	return cmd
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: timeout}
			resp, err := client.Get(baseURL + "/ready")
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("not ready (status %d): %s", resp.StatusCode, body)
			}

			fmt.Println("ready")
			return nil
		},
	}
}

func requestTrialBalance(req dto.TrialBalanceRequest) (*dto.TrialBalanceResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/trial-balance", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%s: %s", apiErr.Error, apiErr.Message)
		}
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	var report dto.TrialBalanceResponse
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &report, nil
}

func printReport(report *dto.TrialBalanceResponse) {
	fmt.Printf("%-10s %-14s %-40s %-6s %-4s %18s %18s %18s %18s\n",
		"LEDGER", "ACCOUNT", "NAME", "SECTOR", "CUR",
		"INITIAL", "DEBIT", "CREDIT", "CURRENT")

	for _, e := range report.Entries {
		fmt.Printf("%-10s %-14s %-40s %-6s %-4s %18s %18s %18s %18s\n",
			e.LedgerNumber,
			truncate(e.AccountNumber, 14),
			truncate(e.AccountName, 40),
			e.SectorCode,
			e.CurrencyCode,
			e.InitialBalance.StringFixed(2),
			e.Debit.StringFixed(2),
			e.Credit.StringFixed(2),
			e.CurrentBalance.StringFixed(2),
		)
	}

	fmt.Printf("\n%d rows (%s)\n", len(report.Entries), report.Type)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to encode: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
