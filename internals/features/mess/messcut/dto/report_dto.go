package dto

import (
	"time"

	service "santhome_backend/internals/features/mess/messcut/service"
)

/* ===================== REPORT ROWS ===================== */

// SummaryRow is one student in the accepted-messcut summary report.
type SummaryRow struct {
	Name            string `json:"name"`
	AdmissionNumber string `json:"admissionNumber"`
	Branch          string `json:"branch"`
	Semester        string `json:"sem"`
	Count           int    `json:"count"`
	LastDate        string `json:"lastDate"`
}

// DetailRow is one messcut record joined with roster details.
type DetailRow struct {
	Name            string    `json:"name"`
	AdmissionNumber string    `json:"admissionNumber"`
	Branch          string    `json:"branch"`
	Semester        string    `json:"sem"`
	LeavingDate     string    `json:"leavingDate"`
	ReturningDate   string    `json:"returningDate"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ByDateRow lists a student strictly inside a leave interval on the
// selected date (start and return days excluded).
type ByDateRow struct {
	AdmissionNumber string `json:"admissionNumber"`
	Name            string `json:"name"`
	RoomNumber      string `json:"roomNo"`
	Messcut         bool   `json:"messcut"`
}

// DateWiseRow is the full-roster meal cross-section for one date.
type DateWiseRow struct {
	Name            string            `json:"name"`
	AdmissionNumber string            `json:"admissionNumber"`
	Branch          string            `json:"branch"`
	Semester        string            `json:"sem"`
	RoomNumber      string            `json:"roomNo"`
	DayType         service.DayType   `json:"dayType"`
	Meals           service.MealFlags `json:"meals"`
}

// MonthDayRow is one calendar day of the per-student month report.
type MonthDayRow struct {
	Date      string          `json:"date"`
	DayType   service.DayType `json:"dayType"`
	Breakfast bool            `json:"breakfast"`
	Lunch     bool            `json:"lunch"`
	Tea       bool            `json:"tea"`
	Dinner    bool            `json:"dinner"`
}

func NewMonthDayRow(d service.DayClassification) MonthDayRow {
	return MonthDayRow{
		Date:      d.Date.String(),
		DayType:   d.DayType,
		Breakfast: d.Meals.Breakfast,
		Lunch:     d.Meals.Lunch,
		Tea:       d.Meals.Tea,
		Dinner:    d.Meals.Dinner,
	}
}

// MonthReportStudent is the roster header of the month report.
type MonthReportStudent struct {
	Name            string `json:"name"`
	AdmissionNumber string `json:"admissionNumber"`
	Semester        string `json:"sem"`
	Branch          string `json:"branch"`
	RoomNumber      string `json:"roomNo"`
}
