package model

import (
	"encoding/json"
	"testing"
)

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1:  "1st",
		2:  "2nd",
		3:  "3rd",
		4:  "4th",
		10: "10th",
		11: "11th",
		12: "12th",
		13: "13th",
		21: "21st",
		22: "22nd",
		23: "23rd",
		24: "24th",
		31: "31st",
	}
	for n, want := range cases {
		if got := Ordinal(n); got != want {
			t.Errorf("Ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestScheduleString(t *testing.T) {
	if got := WeeklySchedule(Monday).String(); got != "Weekly on Mondays" {
		t.Errorf("weekly schedule rendered as %q", got)
	}
	if got := WeeklySchedule(Sunday).String(); got != "Weekly on Sundays" {
		t.Errorf("weekly schedule rendered as %q", got)
	}
	if got := MonthlySchedule(3).String(); got != "Monthly on the 3rd" {
		t.Errorf("monthly schedule rendered as %q", got)
	}
	if got := MonthlySchedule(13).String(); got != "Monthly on the 13th" {
		t.Errorf("monthly schedule rendered as %q", got)
	}
}

func TestScheduleJSON(t *testing.T) {
	weekly, err := json.Marshal(WeeklySchedule(Wednesday))
	if err != nil {
		t.Fatal(err)
	}
	if string(weekly) != `{"Weekly":"Wed"}` {
		t.Errorf("weekly wire form = %s", weekly)
	}

	monthly, err := json.Marshal(MonthlySchedule(31))
	if err != nil {
		t.Fatal(err)
	}
	if string(monthly) != `{"Monthly":31}` {
		t.Errorf("monthly wire form = %s", monthly)
	}

	var s Schedule
	if err := json.Unmarshal([]byte(`{"Weekly":"Fri"}`), &s); err != nil {
		t.Fatal(err)
	}
	if s.Kind != ScheduleWeekly || s.Weekday != Friday {
		t.Errorf("decoded weekly schedule = %+v", s)
	}

	if err := json.Unmarshal([]byte(`{"Monthly":5}`), &s); err != nil {
		t.Fatal(err)
	}
	if s.Kind != ScheduleMonthly || s.Day != 5 {
		t.Errorf("decoded monthly schedule = %+v", s)
	}
}

func TestScheduleJSONRejectsBadVariants(t *testing.T) {
	bad := []string{
		`{}`,
		`{"Weekly":"Funday"}`,
		`{"Monthly":0}`,
		`{"Monthly":32}`,
		`{"Weekly":"Mon","Monthly":3}`,
		`{"Yearly":1}`,
	}
	for _, in := range bad {
		var s Schedule
		if err := json.Unmarshal([]byte(in), &s); err == nil {
			t.Errorf("expected decode error for %s", in)
		}
	}

	if _, err := json.Marshal(Schedule{}); err == nil {
		t.Error("expected marshal error for empty schedule")
	}
}

func TestScheduleSQLRoundTrip(t *testing.T) {
	kind, idx, err := WeeklySchedule(Thursday).ToSQL()
	if err != nil {
		t.Fatal(err)
	}
	if kind != "weekly" || idx != 4 {
		t.Errorf("ToSQL weekly = (%s, %d)", kind, idx)
	}

	back, err := ScheduleFromSQL(kind, idx)
	if err != nil {
		t.Fatal(err)
	}
	if back != WeeklySchedule(Thursday) {
		t.Errorf("round trip = %+v", back)
	}

	if _, err := ScheduleFromSQL("hourly", 1); err == nil {
		t.Error("expected error for unknown schedule type")
	}
	if _, err := ScheduleFromSQL("weekly", 8); err == nil {
		t.Error("expected error for weekday index 8")
	}
}
