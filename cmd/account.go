package cmd

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arlopurcell/ledgy/internal/app"
	"github.com/arlopurcell/ledgy/internal/sync"
	"github.com/arlopurcell/ledgy/internal/ui/prompts"
	"github.com/arlopurcell/ledgy/internal/ui/views"
)

func NewAccountCmd(a *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "List, create and switch between accounts",
		Long:  `List, create and switch between accounts`,
	}

	accountCmd.AddCommand(newAccountListCmd(a))
	accountCmd.AddCommand(newAccountCreateCmd(a))
	accountCmd.AddCommand(newAccountSwitchCmd(a))

	return accountCmd
}

func newAccountListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Controller.ReloadAccounts(); err != nil {
				if !errors.Is(err, sync.ErrRequestFailed) {
					return err
				}
				pterm.Warning.Printf("Sync failed (%v), showing cached list\n", err)
			}

			views.RenderAccounts(a.Registry.Accounts(), a.Registry.Current())
			return nil
		},
	}
}

func newAccountCreateCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new account on the ledger service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			var err error
			if len(args) == 1 {
				name = args[0]
			} else {
				name, err = prompts.PromptAccountName()
				if err != nil {
					return err
				}
			}

			if err := a.Controller.CreateAccount(name); err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			pterm.Success.Printf("Account '%s' created\n", name)
			views.RenderAccounts(a.Registry.Accounts(), a.Registry.Current())
			return nil
		},
	}
}

func newAccountSwitchCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <name>",
		Short: "Switch the current account",
		Long: `Switch the current account. Any in-progress transaction entry is
discarded, and the ledger and recurring transactions for the new account
are refreshed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := a.Registry.SetCurrent(name); err != nil {
				return err
			}

			snap, err := a.Controller.ReloadLedger(name)
			if err != nil {
				if !errors.Is(err, sync.ErrRequestFailed) {
					return err
				}
				pterm.Warning.Printf("Sync failed (%v), switch recorded anyway\n", err)
				snap, err = a.Controller.CachedLedger(name)
				if err != nil {
					pterm.Success.Printf("Current account is now '%s'\n", name)
					return nil
				}
			} else if _, err := a.Controller.ReloadCrons(name); err != nil {
				pterm.Warning.Printf("Failed to refresh recurring transactions: %v\n", err)
			}

			pterm.Success.Printf("Current account is now '%s'\n", name)
			views.RenderLedger(name, snap, a.Prefs)
			return nil
		},
	}
}
