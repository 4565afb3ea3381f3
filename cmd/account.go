package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"unified-ledger/domain"
	"unified-ledger/shared"
)

var (
	accountID       string
	accountName     string
	accountCurrency string
	accountAmount   string
)

// accountCmd represents the account command group
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage accounts",
	Long:  `Provides commands to open and rename accounts.`,
}

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a new account",
	Long: `Opens an account held in one currency (USD, EUR or MRU) with an optional ID
and opening balance. The opening balance is given in USD and converted into
the account's currency. If --id is not provided, a new UUID is generated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if accountName == "" {
			return fmt.Errorf("account name (--name) is required")
		}
		currency := shared.Currency(strings.ToUpper(accountCurrency))
		amount, err := parseAmount(accountAmount, true)
		if err != nil {
			return err
		}

		opts := []domain.AccountOption{domain.WithAmount(amount)}
		if accountID != "" {
			id, err := parseAccountID(accountID)
			if err != nil {
				return err
			}
			if _, err := ledgerService.GetAccount(id); err == nil {
				return fmt.Errorf("%w: %s", domain.ErrAccountExists, id)
			}
			opts = append(opts, domain.WithID(id))
		}

		account, err := domain.OpenAccount(currency, accountName, opts...)
		if err != nil {
			return fmt.Errorf("failed to open account: %w", err)
		}
		id := ledgerService.AddAccount(account)

		view, err := ledgerService.GetAccount(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Account '%s' opened for %s in %s.\n", id, view.Name, view.Currency)
		fmt.Fprintf(cmd.OutOrStdout(), "  Balance: %s\n", describeBalance(view))
		return nil
	},
}

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseAccountID(accountID)
		if err != nil {
			return err
		}
		if accountName == "" {
			return fmt.Errorf("new name (--name) is required")
		}
		if err := ledgerService.RenameAccount(id, accountName); err != nil {
			return fmt.Errorf("failed to rename account: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Account '%s' renamed to %s.\n", id, accountName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(openCmd)
	accountCmd.AddCommand(renameCmd)

	openCmd.Flags().StringVar(&accountID, "id", "", "Optional unique ID for the account (UUID generated if empty)")
	openCmd.Flags().StringVarP(&accountName, "name", "n", "", "Name of the account owner (required)")
	openCmd.Flags().StringVarP(&accountCurrency, "currency", "c", string(shared.Reference), "Currency the account is held in: USD, EUR or MRU")
	openCmd.Flags().StringVarP(&accountAmount, "amount", "a", "0", "Opening balance in USD")

	renameCmd.Flags().StringVar(&accountID, "id", "", "Account ID (required)")
	renameCmd.Flags().StringVarP(&accountName, "name", "n", "", "New name (required)")
}
