package cmd

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arlopurcell/ledgy/internal/app"
	"github.com/arlopurcell/ledgy/internal/sync"
	"github.com/arlopurcell/ledgy/internal/ui/views"
)

type showFlags struct {
	Account string
	Offline bool
}

func NewShowCmd(a *app.App) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the balance and transaction history",
		Long: `Show the balance, credits and debits for the current account
(or another account via --account). When the service is unreachable the
last synced snapshot is shown instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			account := flags.Account
			if account == "" {
				account = a.Registry.Current()
			}

			if flags.Offline {
				return renderCached(a, account)
			}

			snap, err := a.Controller.ReloadLedger(account)
			if errors.Is(err, sync.ErrRequestFailed) {
				pterm.Warning.Printf("Sync failed (%v), showing cached state\n", err)
				return renderCached(a, account)
			}
			if err != nil {
				return err
			}

			// keep the cron cache warm alongside the ledger
			if _, err := a.Controller.ReloadCrons(account); err != nil {
				pterm.Warning.Printf("Failed to refresh recurring transactions: %v\n", err)
			}

			views.RenderLedger(account, snap, a.Prefs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account to show (default: current)")
	cmd.Flags().BoolVar(&flags.Offline, "offline", false, "Skip the sync and show the cached snapshot")

	return cmd
}

func renderCached(a *app.App, account string) error {
	snap, err := a.Controller.CachedLedger(account)
	if err != nil {
		return fmt.Errorf("no cached data for %s: %w", account, err)
	}
	views.RenderLedger(account, snap, a.Prefs)
	return nil
}
