// Package entry implements the multi-page transaction input flow: amount
// entry, description entry, optional recurrence, then submission. The
// machine is a pure value type; prompts and views read from it and feed
// input into it, never the other way around.
package entry

import (
	"errors"
	"fmt"

	"github.com/arlopurcell/ledgy/internal/model"
	"github.com/arlopurcell/ledgy/internal/utils"
)

type Page int

const (
	PageAmount Page = iota + 1
	PageDescription
)

type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Validation errors block submission before any network call is made.
var (
	ErrMissingKind       = errors.New("transaction kind not selected")
	ErrMissingWeekday    = errors.New("weekday not selected for weekly schedule")
	ErrMissingDayOfMonth = errors.New("day of month not selected for monthly schedule")
	ErrSubmitInFlight    = errors.New("a submission is already in flight")
)

// Draft is the transient state of the in-progress form. It lives from
// form open (or account switch) until successful submit or cancel.
type Draft struct {
	EditingID         int64
	IsEdit            bool
	Kind              model.Kind
	AmountText        string
	AmountPlaceholder string
	Description       string
	Recurrence        Recurrence
	Weekday           model.Weekday
	DayOfMonth        int
}

// Submission is what the draft compiles into at submit time: either a
// one-shot transaction, an edit by row id, or a recurrence definition
// (Cron non-nil).
type Submission struct {
	Edit        bool
	RowID       int64
	Kind        model.Kind
	Amount      int64
	Description string
	Cron        *model.CronSpec
}

type Machine struct {
	page  Page
	draft Draft
	busy  bool
}

func NewMachine() *Machine {
	m := &Machine{}
	m.Reset()
	return m
}

func (m *Machine) Page() Page   { return m.page }
func (m *Machine) Draft() Draft { return m.draft }
func (m *Machine) Busy() bool   { return m.busy }

// Reset clears the draft and returns to the amount page. Called on form
// open, successful submit, explicit cancel and account switch.
func (m *Machine) Reset() {
	m.page = PageAmount
	m.draft = Draft{Recurrence: RecurrenceNone}
}

// OpenNew starts a fresh entry of the given kind.
func (m *Machine) OpenNew(kind model.Kind) {
	m.Reset()
	m.draft.Kind = kind
}

// OpenEdit starts an edit of an existing transaction. The amount field
// begins empty with the absolute original amount as placeholder; the
// description is pre-filled.
func (m *Machine) OpenEdit(rowid, amount int64, description string) {
	m.Reset()
	m.draft.EditingID = rowid
	m.draft.IsEdit = true
	if amount < 0 {
		amount = -amount
	}
	m.draft.AmountPlaceholder = utils.FormatFromCents(amount)
	m.draft.Description = description
}

// KeypadPress appends a digit or decimal point to the amount text,
// reporting whether the press was accepted. A second decimal point is
// rejected, as is any digit once two fractional digits are present.
// Keypad input only applies on the amount page.
func (m *Machine) KeypadPress(r rune) bool {
	if m.page != PageAmount || m.busy {
		return false
	}
	if r != '.' && (r < '0' || r > '9') {
		return false
	}

	current := m.draft.AmountText
	if r == '.' {
		for _, c := range current {
			if c == '.' {
				return false
			}
		}
	} else if len(current) >= 3 && current[len(current)-3] == '.' {
		return false
	}

	m.draft.AmountText = current + string(r)
	return true
}

// KeypadDelete removes the last character of the amount text.
func (m *Machine) KeypadDelete() {
	if m.page != PageAmount || m.busy {
		return
	}
	if current := m.draft.AmountText; len(current) > 0 {
		m.draft.AmountText = current[:len(current)-1]
	}
}

// Enter fixes the transaction kind and advances to the description page.
// No numeric validation happens here; that is deferred to submission.
func (m *Machine) Enter(kind model.Kind) error {
	if kind != model.KindCredit && kind != model.KindDebit {
		return ErrMissingKind
	}
	m.draft.Kind = kind
	m.page = PageDescription
	return nil
}

func (m *Machine) SetDescription(text string) {
	m.draft.Description = text
}

// SetRecurrence picks the schedule kind. Editing an existing transaction
// never offers recurrence creation.
func (m *Machine) SetRecurrence(r Recurrence) error {
	if m.draft.IsEdit && r != RecurrenceNone {
		return fmt.Errorf("cannot create a recurrence while editing a transaction")
	}
	switch r {
	case RecurrenceNone, RecurrenceWeekly, RecurrenceMonthly:
		m.draft.Recurrence = r
		return nil
	}
	return fmt.Errorf("unknown recurrence choice %q", r)
}

func (m *Machine) SetWeekday(w model.Weekday) error {
	if !w.Valid() {
		return fmt.Errorf("unknown weekday %q", w)
	}
	m.draft.Weekday = w
	return nil
}

func (m *Machine) SetDayOfMonth(day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("day of month must be between 1 and 31")
	}
	m.draft.DayOfMonth = day
	return nil
}

// BuildSubmission compiles the draft into a request. The transmitted
// amount is the truncated cent value of the entered text, negated for
// debits on edits and recurrences.
func (m *Machine) BuildSubmission() (Submission, error) {
	d := m.draft

	if d.Kind != model.KindCredit && d.Kind != model.KindDebit {
		return Submission{}, ErrMissingKind
	}

	cents, err := utils.ParseToCents(d.AmountText)
	if err != nil {
		return Submission{}, err
	}

	if d.IsEdit {
		amount := cents
		if d.Kind == model.KindDebit {
			amount = -amount
		}
		return Submission{
			Edit:        true,
			RowID:       d.EditingID,
			Kind:        d.Kind,
			Amount:      amount,
			Description: d.Description,
		}, nil
	}

	if d.Recurrence == RecurrenceNone {
		return Submission{
			Kind:        d.Kind,
			Amount:      cents,
			Description: d.Description,
		}, nil
	}

	amount := cents
	if d.Kind == model.KindDebit {
		amount = -amount
	}

	var schedule model.Schedule
	switch d.Recurrence {
	case RecurrenceWeekly:
		if !d.Weekday.Valid() {
			return Submission{}, ErrMissingWeekday
		}
		schedule = model.WeeklySchedule(d.Weekday)
	case RecurrenceMonthly:
		if d.DayOfMonth < 1 || d.DayOfMonth > 31 {
			return Submission{}, ErrMissingDayOfMonth
		}
		schedule = model.MonthlySchedule(d.DayOfMonth)
	}

	return Submission{
		Kind:   d.Kind,
		Amount: amount,
		Cron: &model.CronSpec{
			Amount:      amount,
			Description: d.Description,
			Schedule:    schedule,
		},
		Description: d.Description,
	}, nil
}

// BeginSubmit disables further input until FinishSubmit is called,
// preventing duplicate submission from repeated activation.
func (m *Machine) BeginSubmit() error {
	if m.busy {
		return ErrSubmitInFlight
	}
	m.busy = true
	return nil
}

// FinishSubmit re-enables input. On success the draft is cleared and the
// machine returns to the amount page; on failure everything is preserved
// so the user can retry without re-entering data.
func (m *Machine) FinishSubmit(err error) {
	m.busy = false
	if err == nil {
		m.Reset()
	}
}
