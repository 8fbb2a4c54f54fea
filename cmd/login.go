package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arlopurcell/ledgy/internal/app"
	"github.com/arlopurcell/ledgy/internal/creds"
	"github.com/arlopurcell/ledgy/internal/ui/prompts"
	"github.com/arlopurcell/ledgy/internal/ui/views"
)

func NewLoginCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store credentials and sync from the ledger service",
		Long: `Prompt for the ledger service username and password, store the
resulting authorization token, and perform a full resync of the account
list and the current account's ledger.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password, err := prompts.PromptCredentials()
			if err != nil {
				return err
			}

			token := creds.BasicToken(username, password)
			if err := a.Controller.Login(token); err != nil {
				return fmt.Errorf("login sync failed: %w", err)
			}

			pterm.Success.Printf("Logged in. Current account: %s\n", a.Registry.Current())

			snap, err := a.Controller.CachedLedger(a.Registry.Current())
			if err == nil {
				views.RenderLedger(a.Registry.Current(), snap, a.Prefs)
			}
			return nil
		},
	}
}
