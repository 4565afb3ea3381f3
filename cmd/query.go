package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"unified-ledger/app"
	"unified-ledger/events"
	"unified-ledger/shared"
)

// Variables for query flags
var (
	queryAccountID    string
	querySkip         int
	queryLimit        int
	queryAfterVersion int
)

// queryCmd represents the query command group
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query account information",
	Long:  `Provides commands to query account balances, details and history.`,
}

// balanceCmd represents the balance command
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Get an account balance in USD",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseAccountID(queryAccountID)
		if err != nil {
			return err
		}
		value, err := ledgerService.GetAccountMoney(id)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Account '%s' Balance: %s %s\n", id, formatAmount(value), shared.Reference)
		return nil
	},
}

// showCmd represents the account query command
var showCmd = &cobra.Command{
	Use:   "account",
	Short: "Show an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseAccountID(queryAccountID)
		if err != nil {
			return err
		}
		view, err := ledgerService.GetAccount(id)
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Account '%s':\n", view.ID)
		fmt.Fprintf(out, "  Name:     %s\n", view.Name)
		fmt.Fprintf(out, "  Currency: %s\n", view.Currency)
		fmt.Fprintf(out, "  Balance:  %s\n", describeBalance(view))
		return nil
	},
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		views := ledgerService.Accounts()
		out := cmd.OutOrStdout()
		if len(views) == 0 {
			fmt.Fprintln(out, "No accounts.")
			return nil
		}
		for _, view := range views {
			fmt.Fprintf(out, "%s  %-20s %s\n", view.ID, view.Name, describeBalance(view))
		}
		return nil
	},
}

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Get account history (events)",
	Long:  `Retrieves the journal of changes for a specified account, with optional pagination.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseAccountID(queryAccountID)
		if err != nil {
			return err
		}
		if querySkip < 0 {
			return fmt.Errorf("skip value cannot be negative")
		}
		if queryLimit < 0 {
			return fmt.Errorf("limit value cannot be negative")
		}
		if queryAfterVersion < 0 {
			return fmt.Errorf("after-version value cannot be negative")
		}

		history, err := app.History(eventStore, app.GetHistoryQuery{
			AccountID:    id,
			AfterVersion: queryAfterVersion,
			Skip:         querySkip,
			Limit:        queryLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to get history: %w", err)
		}
		printHistory(cmd, id.String(), history)
		return nil
	},
}

func printHistory(cmd *cobra.Command, accountID string, history []events.Event) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "History for account '%s' (%d events):\n", accountID, len(history))
	if len(history) == 0 {
		fmt.Fprintln(out, "  (No history found)")
	}
	for _, event := range history {
		base := event.GetBase()
		fmt.Fprintf(out, "  v%d [%s] %s", base.Version, base.Timestamp.Format(time.RFC3339), base.Type)
		switch e := event.(type) {
		case events.AccountOpenedEvent:
			fmt.Fprintf(out, " name=%s currency=%s initial=%s %s\n", e.Name, e.Currency, e.InitialValue.StringFixed(2), shared.Reference)
		case events.MoneyAddedEvent:
			fmt.Fprintf(out, " amount=%s %s\n", e.Amount.StringFixed(2), shared.Reference)
		case events.MoneyRetrievedEvent:
			fmt.Fprintf(out, " amount=%s %s\n", e.Amount.StringFixed(2), shared.Reference)
		case events.AccountRenamedEvent:
			fmt.Fprintf(out, " from=%s to=%s\n", e.PreviousName, e.Name)
		default:
			fmt.Fprintln(out)
		}
	}
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.AddCommand(balanceCmd)
	queryCmd.AddCommand(showCmd)
	queryCmd.AddCommand(listCmd)
	queryCmd.AddCommand(historyCmd)

	for _, c := range []*cobra.Command{balanceCmd, showCmd, historyCmd} {
		c.Flags().StringVar(&queryAccountID, "id", "", "Account ID (required)")
	}
	historyCmd.Flags().IntVar(&querySkip, "skip", 0, "Number of events to skip")
	historyCmd.Flags().IntVar(&queryLimit, "limit", 0, "Maximum number of events to return (0 for all)")
	historyCmd.Flags().IntVar(&queryAfterVersion, "after-version", 0, "Only return events newer than this version")
}
