package entry

import (
	"errors"
	"testing"

	"github.com/arlopurcell/ledgy/internal/model"
)

func press(t *testing.T, m *Machine, text string) {
	t.Helper()
	for _, r := range text {
		if !m.KeypadPress(r) {
			t.Fatalf("keypad rejected %q while typing %q", r, text)
		}
	}
}

func TestKeypadRejectsSecondDecimalPoint(t *testing.T) {
	m := NewMachine()
	m.OpenNew(model.KindCredit)
	press(t, m, "12.5")

	if m.KeypadPress('.') {
		t.Error("second decimal point accepted")
	}
	if got := m.Draft().AmountText; got != "12.5" {
		t.Errorf("amount text = %q", got)
	}
}

func TestKeypadRejectsThirdFractionalDigit(t *testing.T) {
	m := NewMachine()
	m.OpenNew(model.KindCredit)
	press(t, m, "12.34")

	if m.KeypadPress('5') {
		t.Error("third fractional digit accepted")
	}
	if got := m.Draft().AmountText; got != "12.34" {
		t.Errorf("amount text = %q", got)
	}
}

func TestKeypadRejectsNonNumeric(t *testing.T) {
	m := NewMachine()
	m.OpenNew(model.KindCredit)
	if m.KeypadPress('x') || m.KeypadPress('-') || m.KeypadPress(' ') {
		t.Error("non-numeric keypad input accepted")
	}
}

func TestKeypadDelete(t *testing.T) {
	m := NewMachine()
	m.OpenNew(model.KindDebit)
	press(t, m, "9.75")
	m.KeypadDelete()
	if got := m.Draft().AmountText; got != "9.7" {
		t.Errorf("amount text after delete = %q", got)
	}

	m.KeypadDelete()
	m.KeypadDelete()
	m.KeypadDelete()
	m.KeypadDelete() // already empty, no-op
	if got := m.Draft().AmountText; got != "" {
		t.Errorf("amount text = %q, want empty", got)
	}
}

func TestKeypadOnlyAppliesOnAmountPage(t *testing.T) {
	m := NewMachine()
	m.OpenNew(model.KindCredit)
	press(t, m, "5")
	if err := m.Enter(model.KindCredit); err != nil {
		t.Fatal(err)
	}

	if m.KeypadPress('1') {
		t.Error("keypad input accepted on description page")
	}
	m.KeypadDelete()
	if got := m.Draft().AmountText; got != "5" {
		t.Errorf("amount text = %q", got)
	}
}

func TestEnterRequiresKind(t *testing.T) {
	m := NewMachine()
	if err := m.Enter(""); !errors.Is(err, ErrMissingKind) {
		t.Errorf("err = %v, want ErrMissingKind", err)
	}
	if m.Page() != PageAmount {
		t.Error("page advanced without a kind")
	}

	if err := m.Enter(model.KindDebit); err != nil {
		t.Fatal(err)
	}
	if m.Page() != PageDescription {
		t.Error("page did not advance")
	}
}

func TestNewCreditSubmission(t *testing.T) {
	m := NewMachine()
	m.OpenNew(model.KindCredit)
	press(t, m, "12.5")
	if err := m.Enter(model.KindCredit); err != nil {
		t.Fatal(err)
	}
	m.SetDescription("coffee")

	sub, err := m.BuildSubmission()
	if err != nil {
		t.Fatal(err)
	}
	if sub.Edit || sub.Cron != nil {
		t.Errorf("submission = %+v, want plain create", sub)
	}
	if sub.Amount != 1250 {
		t.Errorf("amount = %d, want 1250", sub.Amount)
	}
	if sub.Description != "coffee" || sub.Kind != model.KindCredit {
		t.Errorf("submission = %+v", sub)
	}

	// success clears the draft and returns to the amount page
	if err := m.BeginSubmit(); err != nil {
		t.Fatal(err)
	}
	m.FinishSubmit(nil)
	if m.Page() != PageAmount {
		t.Error("page not reset after success")
	}
	if d := m.Draft(); d.AmountText != "" || d.Description != "" || d.Kind != "" {
		t.Errorf("draft not cleared: %+v", d)
	}
}

func TestEditDebitSubmissionIsNegated(t *testing.T) {
	m := NewMachine()
	m.OpenEdit(7, -500, "old dinner")

	d := m.Draft()
	if !d.IsEdit || d.EditingID != 7 {
		t.Fatalf("draft = %+v", d)
	}
	if d.AmountPlaceholder != "5.00" {
		t.Errorf("placeholder = %q, want 5.00", d.AmountPlaceholder)
	}
	if d.AmountText != "" {
		t.Errorf("amount field should start empty, got %q", d.AmountText)
	}
	if d.Description != "old dinner" {
		t.Errorf("description = %q", d.Description)
	}

	press(t, m, "6.00")
	if err := m.Enter(model.KindDebit); err != nil {
		t.Fatal(err)
	}

	sub, err := m.BuildSubmission()
	if err != nil {
		t.Fatal(err)
	}
	if !sub.Edit || sub.RowID != 7 {
		t.Errorf("submission = %+v", sub)
	}
	if sub.Amount != -600 {
		t.Errorf("amount = %d, want -600", sub.Amount)
	}
}

func TestEditCreditSubmissionStaysPositive(t *testing.T) {
	m := NewMachine()
	m.OpenEdit(3, 1500, "pay")
	press(t, m, "20")
	if err := m.Enter(model.KindCredit); err != nil {
		t.Fatal(err)
	}

	sub, err := m.BuildSubmission()
	if err != nil {
		t.Fatal(err)
	}
	if sub.Amount != 2000 {
		t.Errorf("amount = %d, want 2000", sub.Amount)
	}
}

func TestEditRefusesRecurrence(t *testing.T) {
	m := NewMachine()
	m.OpenEdit(7, -500, "dinner")
	if err := m.SetRecurrence(RecurrenceWeekly); err == nil {
		t.Error("recurrence allowed in edit mode")
	}
	if err := m.SetRecurrence(RecurrenceNone); err != nil {
		t.Errorf("none should remain settable: %v", err)
	}
}

func TestMonthlyRecurrenceSubmission(t *testing.T) {
	m := NewMachine()
	m.OpenNew(model.KindDebit)
	press(t, m, "20.00")
	if err := m.Enter(model.KindDebit); err != nil {
		t.Fatal(err)
	}
	m.SetDescription("rent")
	if err := m.SetRecurrence(RecurrenceMonthly); err != nil {
		t.Fatal(err)
	}
	if err := m.SetDayOfMonth(31); err != nil {
		t.Fatal(err)
	}

	sub, err := m.BuildSubmission()
	if err != nil {
		t.Fatal(err)
	}
	if sub.Cron == nil {
		t.Fatal("expected a cron submission")
	}
	if sub.Cron.Amount != -2000 {
		t.Errorf("cron amount = %d, want -2000", sub.Cron.Amount)
	}
	if sub.Cron.Schedule != model.MonthlySchedule(31) {
		t.Errorf("schedule = %+v", sub.Cron.Schedule)
	}
	if sub.Cron.Description != "rent" {
		t.Errorf("description = %q", sub.Cron.Description)
	}
}

func TestWeeklyRecurrenceRequiresWeekday(t *testing.T) {
	m := NewMachine()
	m.OpenNew(model.KindDebit)
	press(t, m, "5")
	if err := m.Enter(model.KindDebit); err != nil {
		t.Fatal(err)
	}
	if err := m.SetRecurrence(RecurrenceWeekly); err != nil {
		t.Fatal(err)
	}

	if _, err := m.BuildSubmission(); !errors.Is(err, ErrMissingWeekday) {
		t.Errorf("err = %v, want ErrMissingWeekday", err)
	}

	if err := m.SetWeekday(model.Tuesday); err != nil {
		t.Fatal(err)
	}
	sub, err := m.BuildSubmission()
	if err != nil {
		t.Fatal(err)
	}
	if sub.Cron == nil || sub.Cron.Schedule != model.WeeklySchedule(model.Tuesday) {
		t.Errorf("submission = %+v", sub)
	}
}

func TestMonthlyRecurrenceRequiresDay(t *testing.T) {
	m := NewMachine()
	m.OpenNew(model.KindCredit)
	press(t, m, "5")
	if err := m.Enter(model.KindCredit); err != nil {
		t.Fatal(err)
	}
	if err := m.SetRecurrence(RecurrenceMonthly); err != nil {
		t.Fatal(err)
	}

	if _, err := m.BuildSubmission(); !errors.Is(err, ErrMissingDayOfMonth) {
		t.Errorf("err = %v, want ErrMissingDayOfMonth", err)
	}

	if err := m.SetDayOfMonth(0); err == nil {
		t.Error("day 0 accepted")
	}
	if err := m.SetDayOfMonth(32); err == nil {
		t.Error("day 32 accepted")
	}
}

func TestFailedSubmitPreservesDraft(t *testing.T) {
	m := NewMachine()
	m.OpenNew(model.KindDebit)
	press(t, m, "7.25")
	if err := m.Enter(model.KindDebit); err != nil {
		t.Fatal(err)
	}
	m.SetDescription("lunch")

	if err := m.BeginSubmit(); err != nil {
		t.Fatal(err)
	}
	if err := m.BeginSubmit(); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("double submit err = %v", err)
	}
	if m.KeypadPress('1') {
		t.Error("keypad accepted input while submit in flight")
	}

	m.FinishSubmit(errors.New("network down"))
	if m.Busy() {
		t.Error("machine still busy after FinishSubmit")
	}
	d := m.Draft()
	if d.AmountText != "7.25" || d.Description != "lunch" {
		t.Errorf("draft not preserved after failure: %+v", d)
	}
	if m.Page() != PageDescription {
		t.Error("page changed after failed submit")
	}
}

func TestResetOnAccountSwitch(t *testing.T) {
	m := NewMachine()
	m.OpenEdit(9, -100, "x")
	press(t, m, "3")

	m.Reset()
	d := m.Draft()
	if d.IsEdit || d.EditingID != 0 || d.AmountText != "" || d.Description != "" {
		t.Errorf("draft survived reset: %+v", d)
	}
	if m.Page() != PageAmount {
		t.Error("page not reset")
	}
	if d.Recurrence != RecurrenceNone {
		t.Errorf("recurrence = %q", d.Recurrence)
	}
}

func TestEmptyAmountIsValidationError(t *testing.T) {
	m := NewMachine()
	m.OpenNew(model.KindCredit)
	if err := m.Enter(model.KindCredit); err != nil {
		t.Fatal(err)
	}
	if _, err := m.BuildSubmission(); err == nil {
		t.Error("empty amount accepted")
	}
}
