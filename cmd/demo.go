package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"unified-ledger/app"
	"unified-ledger/domain"
)

// demoCmd runs a scripted walk through the ledger.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted simulation against the ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "--- Simulating Operations ---")

		fmt.Fprintln(out, "\n[Step 1] Opening accounts in three currencies...")
		aliceID := ledgerService.AddAccount(domain.NewAccount[domain.Euro]("Alice", domain.WithAmount(1000.50)))
		bobID := ledgerService.AddAccount(domain.NewAccount[domain.Ouguiya]("Bob"))
		carolID := ledgerService.AddAccount(domain.NewAccount[domain.Dollar]("Carol"))
		fmt.Fprintf(out, " -> Alice (EUR): %s\n -> Bob (MRU):   %s\n -> Carol (USD): %s\n", aliceID, bobID, carolID)

		fmt.Fprintln(out, "\n[Step 2] Carol withdraws more than she holds...")
		retrieved, err := ledgerService.RetrieveAccountMoney(carolID, 100)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, " -> Retrieved %s, overdraft is allowed.\n", formatAmount(retrieved))
		if err := ledgerService.AddAccountMoney(carolID, 200); err != nil {
			return err
		}
		if _, err := ledgerService.RetrieveAccountMoney(carolID, 50); err != nil {
			return err
		}

		fmt.Fprintln(out, "\n[Step 3] Depositing into Bob's weak-currency account...")
		if err := ledgerService.AddAccountMoney(bobID, 10); err != nil {
			return err
		}

		fmt.Fprintln(out, "\n[Step 4] Alice renames her account...")
		if err := ledgerService.RenameAccount(aliceID, "Alice Smith"); err != nil {
			return err
		}

		fmt.Fprintln(out, "\n[Step 5] Looking up an account that does not exist (should fail)...")
		missing := uuid.New()
		if _, err := ledgerService.GetAccountMoney(missing); errors.Is(err, domain.ErrAccountNotFound) {
			fmt.Fprintf(out, " -> Failed as expected: %v\n", err)
		} else {
			return fmt.Errorf("expected account %s to be missing, got %v", missing, err)
		}

		fmt.Fprintln(out, "\n[Step 6] Final balances...")
		for _, view := range ledgerService.Accounts() {
			fmt.Fprintf(out, "  %-12s %s\n", view.Name, describeBalance(view))
		}

		fmt.Fprintln(out, "\n[Step 7] Carol's history...")
		history, err := app.History(eventStore, app.GetHistoryQuery{AccountID: carolID})
		if err != nil {
			return err
		}
		printHistory(cmd, carolID.String(), history)

		fmt.Fprintln(out, "\n--- Simulation Complete ---")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
