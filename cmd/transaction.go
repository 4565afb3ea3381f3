package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"unified-ledger/shared"
)

var (
	txAccountID string
	txAmountStr string
)

// transactionCmd represents the transaction command group
var transactionCmd = &cobra.Command{
	Use:   "transaction",
	Short: "Move money in and out of accounts",
	Long:  `Provides commands for depositing and withdrawing funds. Amounts are in USD.`,
}

// depositCmd represents the deposit command
var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Deposit funds into an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseAccountID(txAccountID)
		if err != nil {
			return err
		}
		amount, err := parseAmount(txAmountStr, false)
		if err != nil {
			return err
		}

		if err := ledgerService.AddAccountMoney(id, amount); err != nil {
			return fmt.Errorf("deposit failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deposited %s %s into account '%s'.\n", formatAmount(amount), shared.Reference, id)
		return nil
	},
}

// withdrawCmd represents the withdraw command
var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw funds from an account",
	Long: `Withdraws an amount from an account. The balance is allowed to go
negative: the full amount is always withdrawn.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseAccountID(txAccountID)
		if err != nil {
			return err
		}
		amount, err := parseAmount(txAmountStr, false)
		if err != nil {
			return err
		}

		retrieved, err := ledgerService.RetrieveAccountMoney(id, amount)
		if err != nil {
			return fmt.Errorf("withdrawal failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Retrieved %s %s from account '%s'.\n", formatAmount(retrieved), shared.Reference, id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transactionCmd)
	transactionCmd.AddCommand(depositCmd)
	transactionCmd.AddCommand(withdrawCmd)

	for _, c := range []*cobra.Command{depositCmd, withdrawCmd} {
		c.Flags().StringVar(&txAccountID, "id", "", "Account ID (required)")
		c.Flags().StringVarP(&txAmountStr, "amount", "a", "", "Amount in USD (required)")
	}
}
