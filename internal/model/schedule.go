package model

import (
	"encoding/json"
	"fmt"
)

// Weekday is the three-letter wire form the server uses for weekly
// schedules ("Mon".."Sun").
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// Weekdays lists all weekdays in schedule order (Monday first).
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

func (w Weekday) Valid() bool {
	_, ok := weekdayNames[w]
	return ok
}

// FullName returns the long English name, or the raw value when the
// weekday is not one of the known seven.
func (w Weekday) FullName() string {
	if name, ok := weekdayNames[w]; ok {
		return name
	}
	return string(w)
}

// NumberFromMonday maps Monday..Sunday onto 1..7, the index stored for
// weekly schedules. Zero for unknown weekdays.
func (w Weekday) NumberFromMonday() int {
	for i, day := range Weekdays {
		if day == w {
			return i + 1
		}
	}
	return 0
}

type ScheduleKind int

const (
	ScheduleWeekly ScheduleKind = iota + 1
	ScheduleMonthly
)

// Schedule is a closed two-variant type: weekly on a weekday, or monthly
// on a day of month. Exactly one variant is populated; the wire form is
// {"Weekly":"Mon"} or {"Monthly":31} and anything else fails to decode.
type Schedule struct {
	Kind    ScheduleKind
	Weekday Weekday
	Day     int
}

func WeeklySchedule(w Weekday) Schedule {
	return Schedule{Kind: ScheduleWeekly, Weekday: w}
}

func MonthlySchedule(day int) Schedule {
	return Schedule{Kind: ScheduleMonthly, Day: day}
}

func (s Schedule) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case ScheduleWeekly:
		if !s.Weekday.Valid() {
			return nil, fmt.Errorf("invalid weekday %q in weekly schedule", s.Weekday)
		}
		return json.Marshal(struct {
			Weekly Weekday `json:"Weekly"`
		}{s.Weekday})
	case ScheduleMonthly:
		if s.Day < 1 || s.Day > 31 {
			return nil, fmt.Errorf("day of month %d out of range", s.Day)
		}
		return json.Marshal(struct {
			Monthly int `json:"Monthly"`
		}{s.Day})
	}
	return nil, fmt.Errorf("schedule has no variant set")
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	var raw struct {
		Weekly  *Weekday `json:"Weekly"`
		Monthly *int     `json:"Monthly"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Weekly != nil && raw.Monthly != nil:
		return fmt.Errorf("schedule has both Weekly and Monthly variants")
	case raw.Weekly != nil:
		if !raw.Weekly.Valid() {
			return fmt.Errorf("unknown weekday %q in weekly schedule", *raw.Weekly)
		}
		*s = WeeklySchedule(*raw.Weekly)
		return nil
	case raw.Monthly != nil:
		if *raw.Monthly < 1 || *raw.Monthly > 31 {
			return fmt.Errorf("day of month %d out of range", *raw.Monthly)
		}
		*s = MonthlySchedule(*raw.Monthly)
		return nil
	}
	return fmt.Errorf("unrecognized schedule variant")
}

// String renders the schedule the way the transaction list shows it:
// "Weekly on Mondays" or "Monthly on the 31st".
func (s Schedule) String() string {
	switch s.Kind {
	case ScheduleWeekly:
		return fmt.Sprintf("Weekly on %ss", s.Weekday.FullName())
	case ScheduleMonthly:
		return fmt.Sprintf("Monthly on the %s", Ordinal(s.Day))
	}
	return "Unknown schedule"
}

// ToSQL flattens the schedule into the (type, index) pair used by the
// cache tables: weekly days count 1..7 from Monday.
func (s Schedule) ToSQL() (string, int, error) {
	switch s.Kind {
	case ScheduleWeekly:
		n := s.Weekday.NumberFromMonday()
		if n == 0 {
			return "", 0, fmt.Errorf("invalid weekday %q in weekly schedule", s.Weekday)
		}
		return "weekly", n, nil
	case ScheduleMonthly:
		return "monthly", s.Day, nil
	}
	return "", 0, fmt.Errorf("schedule has no variant set")
}

// ScheduleFromSQL is the inverse of ToSQL.
func ScheduleFromSQL(kind string, index int) (Schedule, error) {
	switch kind {
	case "weekly":
		if index < 1 || index > 7 {
			return Schedule{}, fmt.Errorf("weekday index %d out of range", index)
		}
		return WeeklySchedule(Weekdays[index-1]), nil
	case "monthly":
		if index < 1 || index > 31 {
			return Schedule{}, fmt.Errorf("day of month %d out of range", index)
		}
		return MonthlySchedule(index), nil
	}
	return Schedule{}, fmt.Errorf("invalid schedule type %q", kind)
}

// Ordinal returns n with its English ordinal suffix. Days ending in 1, 2
// or 3 take st/nd/rd except the 11th through 13th.
func Ordinal(n int) string {
	j := n % 10
	k := n % 100
	if j == 1 && k != 11 {
		return fmt.Sprintf("%dst", n)
	}
	if j == 2 && k != 12 {
		return fmt.Sprintf("%dnd", n)
	}
	if j == 3 && k != 13 {
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}
