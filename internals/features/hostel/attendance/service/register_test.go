package service

import (
	"errors"
	"testing"
	"time"

	messcut "santhome_backend/internals/features/mess/messcut/service"
)

func TestBuildMonthlyRegisterCounts(t *testing.T) {
	roster := []RosterEntry{
		{AdmissionNumber: "22B401", Name: "Anand", Semester: "S6", RoomNumber: "104"},
		{AdmissionNumber: "22B402", Name: "Basil", Semester: "S6", RoomNumber: "104"},
	}
	marks := []Mark{
		{AdmissionNumber: "22B401", Date: "2025-02-01", Present: true},
		{AdmissionNumber: "22B401", Date: "2025-02-02", Present: true},
		{AdmissionNumber: "22B401", Date: "2025-02-03", Present: false},
		{AdmissionNumber: "22B402", Date: "2025-02-01", Present: true},
	}

	rows, days, err := BuildMonthlyRegister(2025, time.February, roster, marks)
	if err != nil {
		t.Fatalf("BuildMonthlyRegister: %v", err)
	}
	if days != 28 {
		t.Fatalf("days = %d, want 28", days)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	anand := rows[0]
	if anand.Present != 2 || anand.Absent != 26 {
		t.Errorf("anand present/absent = %d/%d, want 2/26", anand.Present, anand.Absent)
	}
	if got := anand.Daily["2025-02-02"]; got != "P" {
		t.Errorf("anand 2025-02-02 = %q, want P", got)
	}
	if got := anand.Daily["2025-02-03"]; got != "A" {
		t.Errorf("anand 2025-02-03 = %q, want A (explicit absent mark)", got)
	}

	basil := rows[1]
	if basil.Present != 1 || basil.Absent != 27 {
		t.Errorf("basil present/absent = %d/%d, want 1/27", basil.Present, basil.Absent)
	}
	// No record at all counts as absent.
	if got := basil.Daily["2025-02-15"]; got != "A" {
		t.Errorf("basil 2025-02-15 = %q, want A", got)
	}
}

func TestBuildMonthlyRegisterFullGrid(t *testing.T) {
	roster := []RosterEntry{{AdmissionNumber: "22B401", Name: "Anand"}}

	rows, days, err := BuildMonthlyRegister(2024, time.February, roster, nil)
	if err != nil {
		t.Fatalf("BuildMonthlyRegister: %v", err)
	}
	if days != 29 {
		t.Fatalf("days = %d, want 29 (leap year)", days)
	}
	if len(rows[0].Daily) != 29 {
		t.Fatalf("daily grid has %d entries, want 29", len(rows[0].Daily))
	}
	if rows[0].Present != 0 || rows[0].Absent != 29 {
		t.Errorf("present/absent = %d/%d, want 0/29", rows[0].Present, rows[0].Absent)
	}
}

func TestBuildMonthlyRegisterInvalidMonth(t *testing.T) {
	_, _, err := BuildMonthlyRegister(2025, time.Month(13), nil, nil)
	var monthErr *messcut.InvalidMonthError
	if !errors.As(err, &monthErr) {
		t.Fatalf("err = %v, want InvalidMonthError", err)
	}
}
