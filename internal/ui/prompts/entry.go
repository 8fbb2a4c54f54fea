package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/arlopurcell/ledgy/internal/entry"
	"github.com/arlopurcell/ledgy/internal/model"
)

// PromptKind asks whether the transaction is a credit or a debit.
func PromptKind() (model.Kind, error) {
	selected := string(model.KindDebit)

	err := huh.NewSelect[string]().
		Title("Transaction type:").
		Options(
			huh.NewOption("Debit (money out)", string(model.KindDebit)),
			huh.NewOption("Credit (money in)", string(model.KindCredit)),
		).
		Value(&selected).
		Run()
	if err != nil {
		return "", err
	}
	return model.Kind(selected), nil
}

// PromptAmount reads the amount text under the keypad entry discipline:
// each character is checked against the same rules the keypad enforces,
// so a second decimal point or a third fractional digit is rejected up
// front rather than silently truncated later.
func PromptAmount(placeholder string) (string, error) {
	var amount string

	input := huh.NewInput().
		Title("Transaction amount:").
		Description("Digits with at most two decimal places").
		Value(&amount).
		Validate(ValidateAmountText)

	if placeholder != "" {
		input.Placeholder(placeholder)
	}

	err := input.Run()
	return amount, err
}

// ValidateAmountText replays the text through a scratch entry machine,
// failing on the first keypress the keypad would reject.
func ValidateAmountText(s string) error {
	m := entry.NewMachine()
	m.OpenNew(model.KindCredit)
	for _, r := range s {
		if !m.KeypadPress(r) {
			return fmt.Errorf("invalid amount character %q", string(r))
		}
	}
	return nil
}

// PromptDescription asks for the free-text description, pre-filled in
// edit mode.
func PromptDescription(initial string) (string, error) {
	desc := initial

	err := huh.NewInput().
		Title("Description:").
		Value(&desc).
		Run()

	return desc, err
}

// PromptRecurrence picks a schedule kind for a new transaction.
func PromptRecurrence() (entry.Recurrence, error) {
	selected := string(entry.RecurrenceNone)

	err := huh.NewSelect[string]().
		Title("Repeat this transaction?").
		Options(
			huh.NewOption("No, just once", string(entry.RecurrenceNone)),
			huh.NewOption("Weekly", string(entry.RecurrenceWeekly)),
			huh.NewOption("Monthly", string(entry.RecurrenceMonthly)),
		).
		Value(&selected).
		Run()
	if err != nil {
		return "", err
	}
	return entry.Recurrence(selected), nil
}

// PromptWeekday picks the weekday for a weekly schedule.
func PromptWeekday() (model.Weekday, error) {
	var opts []huh.Option[string]
	for _, day := range model.Weekdays {
		opts = append(opts, huh.NewOption(day.FullName(), string(day)))
	}

	selected := string(model.Monday)
	err := huh.NewSelect[string]().
		Title("Every which day?").
		Options(opts...).
		Value(&selected).
		Run()
	if err != nil {
		return "", err
	}
	return model.Weekday(selected), nil
}

// PromptDayOfMonth picks the day for a monthly schedule.
func PromptDayOfMonth() (int, error) {
	var text string

	err := huh.NewInput().
		Title("On which day of the month?").
		Description("1 to 31").
		Value(&text).
		Validate(func(s string) error {
			day, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("enter a number between 1 and 31")
			}
			if day < 1 || day > 31 {
				return fmt.Errorf("day of month must be between 1 and 31")
			}
			return nil
		}).
		Run()
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(text))
}

// PromptAccountName asks for the name of a new account.
func PromptAccountName() (string, error) {
	return PromptInput("Account name:", "", func(s string) error {
		name := strings.TrimSpace(s)
		if name == "" {
			return fmt.Errorf("account name can't be empty")
		}
		if strings.ContainsAny(name, "/ ") {
			return fmt.Errorf("account name cannot contain spaces or '/'")
		}
		if len(name) > 100 {
			return fmt.Errorf("account name too long (max 100 characters)")
		}
		return nil
	})
}
