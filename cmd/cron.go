package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arlopurcell/ledgy/internal/app"
	"github.com/arlopurcell/ledgy/internal/sync"
	"github.com/arlopurcell/ledgy/internal/ui/views"
)

// surveyOpts contains custom options for all survey prompts
var surveyOpts = []survey.AskOpt{
	survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	}),
}

func NewCronCmd(a *app.App) *cobra.Command {
	cronCmd := &cobra.Command{
		Use:   "cron",
		Short: "List and delete recurring transactions",
		Long: `List and delete recurring transactions for the current account.
New recurring transactions are created through 'ledgy add'.`,
	}

	cronCmd.AddCommand(newCronListCmd(a))
	cronCmd.AddCommand(newCronDeleteCmd(a))

	return cronCmd
}

func newCronListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			account := a.Registry.Current()

			crons, err := a.Controller.ReloadCrons(account)
			if errors.Is(err, sync.ErrRequestFailed) {
				pterm.Warning.Printf("Sync failed (%v), showing cached state\n", err)
				crons, err = a.Controller.CachedCrons(account)
			}
			if err != nil {
				return err
			}

			views.RenderCrons(account, crons)
			return nil
		},
	}
}

func newCronDeleteCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <cron-id>",
		Short: "Delete a recurring transaction",
		Long:  `Delete a recurring transaction. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rowid int64
			if _, err := fmt.Sscanf(args[0], "%d", &rowid); err != nil {
				return fmt.Errorf("invalid cron ID: %s", args[0])
			}

			account := a.Registry.Current()

			var confirmation bool
			confirmPrompt := &survey.Confirm{
				Message: fmt.Sprintf("Delete recurring transaction #%d on %s?", rowid, account),
				Default: false,
			}
			if err := survey.AskOne(confirmPrompt, &confirmation, surveyOpts...); err != nil {
				return err
			}

			if !confirmation {
				pterm.Info.Println("Deletion cancelled")
				return nil
			}

			if err := a.Controller.DeleteCron(account, rowid); err != nil {
				return fmt.Errorf("failed to delete recurring transaction: %w", err)
			}

			pterm.Success.Printf("Recurring transaction #%d deleted\n", rowid)

			if crons, err := a.Controller.CachedCrons(account); err == nil {
				views.RenderCrons(account, crons)
			}
			return nil
		},
	}
}
