package service

import (
	"errors"
	"testing"
	"time"
)

func mustInterval(t *testing.T, adm, start, end string) LeaveInterval {
	t.Helper()
	iv, err := NewLeaveInterval(adm, start, end)
	if err != nil {
		t.Fatalf("unexpected error building interval: %v", err)
	}
	return iv
}

func TestClassifyDayNoIntervals(t *testing.T) {
	got := ClassifyDay(NewCivilDate(2024, time.March, 15), nil)

	if got.DayType != DayPresent {
		t.Fatalf("dayType: want PRESENT, got %s", got.DayType)
	}
	if got.Meals != (MealFlags{true, true, true, true}) {
		t.Fatalf("meals: want all true, got %+v", got.Meals)
	}
}

func TestClassifyDayAcrossInterval(t *testing.T) {
	iv := mustInterval(t, "JEC100", "2024-03-10", "2024-03-14")
	intervals := []LeaveInterval{iv}

	cases := []struct {
		day      int
		wantType DayType
		want     MealFlags
	}{
		{9, DayPresent, MealFlags{true, true, true, true}},
		{10, DayLeaveStart, MealFlags{true, true, true, false}},
		{11, DayLeaveMiddle, MealFlags{}},
		{12, DayLeaveMiddle, MealFlags{}},
		{13, DayLeaveMiddle, MealFlags{}},
		{14, DayLeaveEnd, MealFlags{true, true, true, true}},
		{15, DayPresent, MealFlags{true, true, true, true}},
	}

	for _, tc := range cases {
		got := ClassifyDay(NewCivilDate(2024, time.March, tc.day), intervals)
		if got.DayType != tc.wantType {
			t.Errorf("day %d: want %s, got %s", tc.day, tc.wantType, got.DayType)
		}
		if got.Meals != tc.want {
			t.Errorf("day %d meals: want %+v, got %+v", tc.day, tc.want, got.Meals)
		}
	}
}

func TestClassifyDaySingleDayLeave(t *testing.T) {
	// start == end resolves through the start branch: dinner cut only
	iv := mustInterval(t, "JEC100", "2024-03-10", "2024-03-10")

	got := ClassifyDay(NewCivilDate(2024, time.March, 10), []LeaveInterval{iv})
	if got.DayType != DayLeaveStart {
		t.Fatalf("want LEAVE_START, got %s", got.DayType)
	}
	if got.Meals != (MealFlags{true, true, true, false}) {
		t.Fatalf("want dinner cut only, got %+v", got.Meals)
	}
}

func TestClassifyDayLastIntervalWins(t *testing.T) {
	// overlapping intervals should not occur, but must not crash; the last
	// one in caller order decides
	a := mustInterval(t, "JEC100", "2024-03-10", "2024-03-14")
	b := mustInterval(t, "JEC100", "2024-03-12", "2024-03-12")

	got := ClassifyDay(NewCivilDate(2024, time.March, 12), []LeaveInterval{a, b})
	if got.DayType != DayLeaveStart {
		t.Fatalf("want LEAVE_START from last interval, got %s", got.DayType)
	}

	got = ClassifyDay(NewCivilDate(2024, time.March, 12), []LeaveInterval{b, a})
	if got.DayType != DayLeaveMiddle {
		t.Fatalf("want LEAVE_MIDDLE from last interval, got %s", got.DayType)
	}
}

func TestWalkMonthLengths(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.March, 31},
		{2024, time.April, 30},
		{2024, time.February, 29}, // leap
		{2023, time.February, 28},
	}

	for _, tc := range cases {
		days, err := WalkMonth(tc.year, tc.month, nil)
		if err != nil {
			t.Fatalf("%d-%d: unexpected error: %v", tc.year, tc.month, err)
		}
		if len(days) != tc.want {
			t.Errorf("%d-%d: want %d entries, got %d", tc.year, tc.month, tc.want, len(days))
		}
	}
}

func TestWalkMonthEntries(t *testing.T) {
	iv := mustInterval(t, "JEC100", "2024-03-10", "2024-03-14")

	days, err := WalkMonth(2024, time.March, []LeaveInterval{iv})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 31 {
		t.Fatalf("want 31 entries, got %d", len(days))
	}

	if days[0].Date.String() != "2024-03-01" {
		t.Errorf("first entry: want 2024-03-01, got %s", days[0].Date)
	}
	if days[30].Date.String() != "2024-03-31" {
		t.Errorf("last entry: want 2024-03-31, got %s", days[30].Date)
	}

	for i, d := range days {
		day := i + 1
		var want DayType
		switch {
		case day == 10:
			want = DayLeaveStart
		case day > 10 && day < 14:
			want = DayLeaveMiddle
		case day == 14:
			want = DayLeaveEnd
		default:
			want = DayPresent
		}
		if d.DayType != want {
			t.Errorf("day %d: want %s, got %s", day, want, d.DayType)
		}
	}
}

func TestWalkMonthIdempotent(t *testing.T) {
	iv := mustInterval(t, "JEC100", "2024-03-10", "2024-03-14")
	intervals := []LeaveInterval{iv}

	first, err := WalkMonth(2024, time.March, intervals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := WalkMonth(2024, time.March, intervals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestWalkMonthInvalidMonth(t *testing.T) {
	for _, m := range []time.Month{0, 13} {
		_, err := WalkMonth(2024, m, nil)
		var invalid *InvalidMonthError
		if !errors.As(err, &invalid) {
			t.Fatalf("month %d: want InvalidMonthError, got %v", m, err)
		}
	}
}

func TestNewLeaveIntervalBadDate(t *testing.T) {
	_, err := NewLeaveInterval("JEC100", "10-03-2024", "2024-03-14")
	var invalid *InvalidDateError
	if !errors.As(err, &invalid) {
		t.Fatalf("want InvalidDateError, got %v", err)
	}
	if invalid.AdmissionNumber != "JEC100" {
		t.Errorf("error should name the offending record, got %q", invalid.AdmissionNumber)
	}
}

func TestIndexByAdmission(t *testing.T) {
	ivs := []LeaveInterval{
		mustInterval(t, "JEC100", "2024-03-10", "2024-03-14"),
		mustInterval(t, "JEC200", "2024-03-05", "2024-03-06"),
		mustInterval(t, "JEC100", "2024-03-20", "2024-03-22"),
	}

	idx := IndexByAdmission(ivs)
	if len(idx) != 2 {
		t.Fatalf("want 2 students, got %d", len(idx))
	}
	if len(idx["JEC100"]) != 2 {
		t.Errorf("JEC100: want 2 intervals, got %d", len(idx["JEC100"]))
	}
	// input order preserved per student
	if !idx["JEC100"][0].Start.Equal(NewCivilDate(2024, time.March, 10)) {
		t.Errorf("JEC100 interval order not preserved")
	}
}
