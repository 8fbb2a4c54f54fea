package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arlopurcell/ledgy/internal/app"
	"github.com/arlopurcell/ledgy/internal/entry"
	"github.com/arlopurcell/ledgy/internal/model"
	"github.com/arlopurcell/ledgy/internal/ui/prompts"
	"github.com/arlopurcell/ledgy/internal/ui/views"
)

type addFlags struct {
	Kind   string
	Amount string
	Desc   string
}

type addRunner struct {
	app     *app.App
	flags   *addFlags
	cmd     *cobra.Command
	machine *entry.Machine
}

func NewAddCmd(a *app.App) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record a credit or debit against the current account.

You can use flags for quick entry or interactive mode for guided input.
Interactive mode also offers weekly and monthly recurring transactions.

Examples:
  # Interactive mode
  ledgy add

  # Quick mode with flags
  ledgy add --kind debit --amount 4.50 --desc "Coffee"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				app:     a,
				flags:   flags,
				cmd:     cmd,
				machine: entry.NewMachine(),
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Kind, "kind", "k", "", "Transaction kind: credit or debit")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount (e.g., 150 or 150.50)")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Transaction description")

	return cmd
}

func (r *addRunner) Run() error {
	hasFlags := r.cmd.Flags().Changed("kind") || r.cmd.Flags().Changed("amount") ||
		r.cmd.Flags().Changed("desc")

	var err error
	if hasFlags {
		err = r.flagsMode()
	} else {
		err = r.interactiveMode()
	}
	if err != nil {
		return err
	}

	return r.submit()
}

func (r *addRunner) flagsMode() error {
	if r.flags.Kind == "" || r.flags.Amount == "" {
		return fmt.Errorf("when using flags, --kind and --amount are both required")
	}

	kind := model.Kind(r.flags.Kind)
	if kind != model.KindCredit && kind != model.KindDebit {
		return fmt.Errorf("invalid kind %q (must be credit or debit)", r.flags.Kind)
	}

	if err := prompts.ValidateAmountText(r.flags.Amount); err != nil {
		return err
	}

	r.machine.OpenNew(kind)
	r.typeAmount(r.flags.Amount)
	if err := r.machine.Enter(kind); err != nil {
		return err
	}
	r.machine.SetDescription(r.flags.Desc)
	return nil
}

func (r *addRunner) interactiveMode() error {
	kind, err := prompts.PromptKind()
	if err != nil {
		return err
	}
	r.machine.OpenNew(kind)

	amountText, err := prompts.PromptAmount("")
	if err != nil {
		return err
	}
	r.typeAmount(amountText)

	if err := r.machine.Enter(kind); err != nil {
		return err
	}

	desc, err := prompts.PromptDescription(r.machine.Draft().Description)
	if err != nil {
		return err
	}
	r.machine.SetDescription(desc)

	recurrence, err := prompts.PromptRecurrence()
	if err != nil {
		return err
	}
	if err := r.machine.SetRecurrence(recurrence); err != nil {
		return err
	}

	switch recurrence {
	case entry.RecurrenceWeekly:
		weekday, err := prompts.PromptWeekday()
		if err != nil {
			return err
		}
		if err := r.machine.SetWeekday(weekday); err != nil {
			return err
		}
	case entry.RecurrenceMonthly:
		day, err := prompts.PromptDayOfMonth()
		if err != nil {
			return err
		}
		if err := r.machine.SetDayOfMonth(day); err != nil {
			return err
		}
	}

	return nil
}

// typeAmount feeds validated amount text through the keypad one press at
// a time, keeping the two-decimal entry discipline in one place.
func (r *addRunner) typeAmount(text string) {
	for _, c := range text {
		r.machine.KeypadPress(c)
	}
}

func (r *addRunner) submit() error {
	sub, err := r.machine.BuildSubmission()
	if err != nil {
		return err
	}

	account := r.app.Registry.Current()

	if err := r.machine.BeginSubmit(); err != nil {
		return err
	}
	err = r.app.Controller.Submit(account, sub)
	r.machine.FinishSubmit(err)
	if err != nil {
		return fmt.Errorf("failed to submit transaction: %w", err)
	}

	if sub.Cron != nil {
		pterm.Success.Printf("Recurring transaction created (%s)\n", sub.Cron.Schedule)
	} else {
		pterm.Success.Printf("Transaction recorded on %s\n", account)
	}

	if snap, err := r.app.Controller.CachedLedger(account); err == nil {
		views.RenderLedger(account, snap, r.app.Prefs)
	}
	return nil
}
