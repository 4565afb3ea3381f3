package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"unified-ledger/app"
	"unified-ledger/domain"
	"unified-ledger/shared"
	"unified-ledger/store"
)

var (
	// The ledger and its journal live for the whole process, so state is
	// shared across commands run from the REPL.
	ledger        = app.NewLedger()
	eventStore    = store.NewInMemoryEventStore()
	ledgerService app.Service

	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ledger-cli",
	Short: "A CLI for the multi-currency unified ledger",
	Long: `ledger-cli manages accounts held in USD, EUR or MRU through a single
ledger. Every amount given to or printed by a command is in USD, the
reference currency, whatever currency the account is held in.

The ledger is in memory: use the repl command to keep it across commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
		if err != nil {
			return err
		}
		ledgerService = app.NewJournalingService(ledger, eventStore, log.With(logger, "component", "journal"))
		ledgerService = app.NewLoggingService(log.With(logger, "component", "ledger"), ledgerService)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error or none")
	rootCmd.AddCommand(replCmd)
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var allow level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		allow = level.AllowDebug()
	case "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	case "none":
		allow = level.AllowNone()
	default:
		return nil, fmt.Errorf("invalid log level: %q. Supported: debug, info, warn, error, none", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, allow), nil
}

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive REPL session",
	Long:  `Starts an interactive Read-Eval-Print Loop session to interact with the ledger.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Starting ledger CLI REPL. Type 'exit' or 'quit' to exit.")

		sessionLevel := logLevel
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())

			if input == "exit" || input == "quit" {
				break
			}
			if input == "" {
				continue
			}

			commandArgs := strings.Fields(input)
			if commandArgs[0] == "repl" {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: already in a REPL session")
				continue
			}

			// Flag values are bound to package variables and survive between
			// executions; reset them so each line starts from the defaults.
			if err := resetFlags(rootCmd); err != nil {
				return err
			}
			logLevel = sessionLevel
			rootCmd.SetArgs(commandArgs)
			if err := rootCmd.Execute(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		}

		fmt.Fprintln(out, "Exiting REPL.")
		return scanner.Err()
	},
}

// resetFlags restores the default of every command-local flag under c.
// Persistent flags such as --log-level are not touched.
func resetFlags(c *cobra.Command) error {
	var err error
	c.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		if setErr := f.Value.Set(f.DefValue); setErr != nil {
			err = fmt.Errorf("failed to reset flag --%s on %q: %w", f.Name, c.Name(), setErr)
			return
		}
		f.Changed = false
	})
	if err != nil {
		return err
	}
	for _, sub := range c.Commands() {
		if err := resetFlags(sub); err != nil {
			return err
		}
	}
	return nil
}

func parseAccountID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, fmt.Errorf("account ID (--id) is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid account ID: %q. %v", raw, err)
	}
	return id, nil
}

// parseAmount reads a reference-unit amount. Non-positive amounts are
// rejected unless allowZero is set and the amount is zero.
func parseAmount(raw string, allowZero bool) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("amount (--amount) is required")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid amount format: %q. %v", raw, err)
	}
	if amount.IsNegative() || (amount.IsZero() && !allowZero) {
		return 0, fmt.Errorf("amount must be positive: %s", amount)
	}
	v := amount.InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("amount out of range: %q", raw)
	}
	return v, nil
}

// formatAmount prints v with two decimals. Overflowed balances have no
// decimal form and are printed as floats.
func formatAmount(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

func describeBalance(view domain.AccountView) string {
	if view.Currency == shared.Reference {
		return fmt.Sprintf("%s %s", formatAmount(view.Value), shared.Reference)
	}
	return fmt.Sprintf("%s %s (%s %s)", formatAmount(view.Value), shared.Reference, formatAmount(view.Amount), view.Currency)
}
