package service

import (
	"fmt"
	"time"

	messcut "santhome_backend/internals/features/mess/messcut/service"
)

// RosterEntry is the slice of the student record the register needs.
type RosterEntry struct {
	AdmissionNumber string
	Name            string
	Semester        string
	RoomNumber      string
}

// Mark is one saved roll-call record.
type Mark struct {
	AdmissionNumber string
	Date            string
	Present         bool
}

// RegisterRow is one student's line in the monthly register. Daily maps
// every date of the month to "P" or "A"; a missing record counts absent.
type RegisterRow struct {
	AdmissionNumber string            `json:"admissionNumber"`
	Name            string            `json:"name"`
	Semester        string            `json:"semester"`
	RoomNumber      string            `json:"roomNo"`
	Daily           map[string]string `json:"daily"`
	Present         int               `json:"present"`
	Absent          int               `json:"absent"`
}

// BuildMonthlyRegister expands the saved marks into a full P/A grid for
// every rostered student across every day of the month.
func BuildMonthlyRegister(year int, month time.Month, roster []RosterEntry, marks []Mark) ([]RegisterRow, int, error) {
	if month < time.January || month > time.December {
		return nil, 0, &messcut.InvalidMonthError{Month: int(month)}
	}
	days := messcut.DaysIn(year, month)

	present := make(map[string]map[string]bool, len(marks))
	for _, m := range marks {
		byDate := present[m.AdmissionNumber]
		if byDate == nil {
			byDate = make(map[string]bool)
			present[m.AdmissionNumber] = byDate
		}
		byDate[m.Date] = m.Present
	}

	rows := make([]RegisterRow, 0, len(roster))
	for _, std := range roster {
		row := RegisterRow{
			AdmissionNumber: std.AdmissionNumber,
			Name:            std.Name,
			Semester:        std.Semester,
			RoomNumber:      std.RoomNumber,
			Daily:           make(map[string]string, days),
		}
		for d := 1; d <= days; d++ {
			day := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
			if present[std.AdmissionNumber][day] {
				row.Daily[day] = "P"
				row.Present++
			} else {
				row.Daily[day] = "A"
				row.Absent++
			}
		}
		rows = append(rows, row)
	}
	return rows, days, nil
}
