package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/arlopurcell/ledgy/internal/model"
)

func snapshotFixture() *model.LedgerSnapshot {
	return &model.LedgerSnapshot{
		Balance: 1250,
		Credits: []model.Transaction{{RowID: 1, Amount: 2000, Description: "pay"}},
		Debits:  []model.Transaction{{RowID: 2, Amount: -750, Description: "coffee"}},
	}
}

func TestRAMStoreSnapshotRoundTrip(t *testing.T) {
	s := NewRAMStore()

	if _, err := s.GetSnapshot("spend"); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("expected ErrNoSnapshot, got %v", err)
	}

	want := snapshotFixture()
	if err := s.ReplaceSnapshot("spend", want); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetSnapshot("spend")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("snapshot = %+v, want %+v", got, want)
	}
}

func TestReplaceSnapshotIsIdempotent(t *testing.T) {
	s := NewRAMStore()

	if err := s.ReplaceSnapshot("spend", snapshotFixture()); err != nil {
		t.Fatal(err)
	}
	first, err := s.GetSnapshot("spend")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.ReplaceSnapshot("spend", snapshotFixture()); err != nil {
		t.Fatal(err)
	}
	second, err := s.GetSnapshot("spend")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("refresh with unchanged data altered the cache: %+v vs %+v", first, second)
	}
}

func TestReplaceSnapshotIsWholesale(t *testing.T) {
	s := NewRAMStore()

	if err := s.ReplaceSnapshot("spend", snapshotFixture()); err != nil {
		t.Fatal(err)
	}
	if err := s.ReplaceSnapshot("spend", &model.LedgerSnapshot{Balance: 5}); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetSnapshot("spend")
	if err != nil {
		t.Fatal(err)
	}
	if got.Balance != 5 || len(got.Credits) != 0 || len(got.Debits) != 0 {
		t.Errorf("stale rows survived the replace: %+v", got)
	}
}

func TestRAMStoreCrons(t *testing.T) {
	s := NewRAMStore()

	crons := []model.Cron{
		{RowID: 1, Spec: model.CronSpec{Amount: -2000, Description: "rent", Schedule: model.MonthlySchedule(1)}},
		{RowID: 2, Spec: model.CronSpec{Amount: 5000, Description: "salary", Schedule: model.WeeklySchedule(model.Friday)}},
	}
	if err := s.ReplaceCrons("spend", crons); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetCrons("spend")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, crons) {
		t.Errorf("crons = %+v", got)
	}

	if err := s.ReplaceCrons("spend", nil); err != nil {
		t.Fatal(err)
	}
	got, err = s.GetCrons("spend")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("crons not cleared: %+v", got)
	}
}
