package cmd

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arlopurcell/ledgy/internal/app"
	"github.com/arlopurcell/ledgy/internal/entry"
	"github.com/arlopurcell/ledgy/internal/model"
	"github.com/arlopurcell/ledgy/internal/sync"
	"github.com/arlopurcell/ledgy/internal/ui/prompts"
	"github.com/arlopurcell/ledgy/internal/ui/views"
)

func NewEditCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit an existing transaction",
		Long: `Edit the amount and description of an existing transaction on the
current account. The transaction id is shown by 'ledgy show'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rowid int64
			if _, err := fmt.Sscanf(args[0], "%d", &rowid); err != nil {
				return fmt.Errorf("invalid transaction ID: %s", args[0])
			}

			account := a.Registry.Current()

			snap, err := a.Controller.ReloadLedger(account)
			if errors.Is(err, sync.ErrRequestFailed) {
				pterm.Warning.Printf("Sync failed (%v), using cached state\n", err)
				snap, err = a.Controller.CachedLedger(account)
			}
			if err != nil {
				return err
			}

			kind, tx := findTransaction(snap, rowid)
			if tx == nil {
				return fmt.Errorf("transaction %d not found on %s", rowid, account)
			}

			machine := entry.NewMachine()
			machine.OpenEdit(tx.RowID, tx.Amount, tx.Description)

			amountText, err := prompts.PromptAmount(machine.Draft().AmountPlaceholder)
			if err != nil {
				return err
			}
			for _, c := range amountText {
				machine.KeypadPress(c)
			}

			if err := machine.Enter(kind); err != nil {
				return err
			}

			desc, err := prompts.PromptDescription(machine.Draft().Description)
			if err != nil {
				return err
			}
			machine.SetDescription(desc)

			sub, err := machine.BuildSubmission()
			if err != nil {
				return err
			}

			if err := machine.BeginSubmit(); err != nil {
				return err
			}
			err = a.Controller.Submit(account, sub)
			machine.FinishSubmit(err)
			if err != nil {
				return fmt.Errorf("failed to edit transaction: %w", err)
			}

			pterm.Success.Printf("Transaction #%d updated\n", rowid)

			if snap, err := a.Controller.CachedLedger(account); err == nil {
				views.RenderLedger(account, snap, a.Prefs)
			}
			return nil
		},
	}
}

// findTransaction locates a row in either list of a snapshot, reporting
// which side it lives on.
func findTransaction(snap *model.LedgerSnapshot, rowid int64) (model.Kind, *model.Transaction) {
	for i := range snap.Credits {
		if snap.Credits[i].RowID == rowid {
			return model.KindCredit, &snap.Credits[i]
		}
	}
	for i := range snap.Debits {
		if snap.Debits[i].RowID == rowid {
			return model.KindDebit, &snap.Debits[i]
		}
	}
	return "", nil
}
