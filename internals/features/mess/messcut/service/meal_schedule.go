package service

import "time"

// DayType classifies a calendar day against a student's accepted mess-cuts.
type DayType string

const (
	DayPresent     DayType = "PRESENT"
	DayLeaveStart  DayType = "LEAVE_START"
	DayLeaveMiddle DayType = "LEAVE_MIDDLE"
	DayLeaveEnd    DayType = "LEAVE_END"
)

// MealFlags marks which of the four daily meals the student is expected to
// take. true = meal served for them, false = meal cut.
type MealFlags struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Tea       bool `json:"tea"`
	Dinner    bool `json:"dinner"`
}

var (
	allMeals = MealFlags{Breakfast: true, Lunch: true, Tea: true, Dinner: true}
	noMeals  = MealFlags{}
	// departure is after tea, before dinner
	departureMeals = MealFlags{Breakfast: true, Lunch: true, Tea: true, Dinner: false}
)

// LeaveInterval is one ACCEPTed mess-cut for a student. End >= Start;
// callers filter to accepted status before building intervals.
type LeaveInterval struct {
	AdmissionNumber string
	Start           CivilDate
	End             CivilDate
}

// Contains reports whether d falls within [Start, End] inclusive.
func (iv LeaveInterval) Contains(d CivilDate) bool {
	return !d.Before(iv.Start) && !d.After(iv.End)
}

// DayClassification is derived per (student, date) and never persisted.
type DayClassification struct {
	Date    CivilDate `json:"date"`
	DayType DayType   `json:"dayType"`
	Meals   MealFlags `json:"meals"`
}

// ClassifyDay resolves the day type and meal flags for target against the
// given intervals.
//
// The start-equality branch is checked first, so a single-day cut
// (start == end) resolves to LEAVE_START — breakfast through tea kept,
// dinner cut. Questionable for a one-day leave, but it is the behavior the
// mess office signed off on; do not reorder without product confirmation.
//
// When several intervals cover the same date (the request flow is supposed
// to prevent this) the last one in caller order wins.
func ClassifyDay(target CivilDate, intervals []LeaveInterval) DayClassification {
	out := DayClassification{Date: target, DayType: DayPresent, Meals: allMeals}

	for _, iv := range intervals {
		if !iv.Contains(target) {
			continue
		}
		switch {
		case target.Equal(iv.Start):
			out.DayType = DayLeaveStart
			out.Meals = departureMeals
		case target.After(iv.Start) && target.Before(iv.End):
			out.DayType = DayLeaveMiddle
			out.Meals = noMeals
		case target.Equal(iv.End):
			// returned before breakfast
			out.DayType = DayLeaveEnd
			out.Meals = allMeals
		}
	}

	return out
}

// WalkMonth produces one classification per calendar day of (year, month),
// ascending. Pure: identical inputs give identical output.
func WalkMonth(year int, month time.Month, intervals []LeaveInterval) ([]DayClassification, error) {
	if month < time.January || month > time.December {
		return nil, &InvalidMonthError{Month: int(month)}
	}

	days := DaysIn(year, month)
	out := make([]DayClassification, 0, days)
	for day := 1; day <= days; day++ {
		out = append(out, ClassifyDay(NewCivilDate(year, month, day), intervals))
	}
	return out, nil
}

// IndexByAdmission groups intervals per student so a cross-section report
// is one map lookup per rostered student instead of a scan over every
// interval. Per-student order follows input order, preserving the
// last-interval-wins tie-break of ClassifyDay.
func IndexByAdmission(intervals []LeaveInterval) map[string][]LeaveInterval {
	idx := make(map[string][]LeaveInterval, len(intervals))
	for _, iv := range intervals {
		idx[iv.AdmissionNumber] = append(idx[iv.AdmissionNumber], iv)
	}
	return idx
}

// NewLeaveInterval parses the stored YYYY-MM-DD strings of one accepted
// mess-cut record. A bad date is reported, never silently defaulted.
func NewLeaveInterval(admissionNumber, startDate, endDate string) (LeaveInterval, error) {
	start, err := ParseCivilDate(startDate)
	if err != nil {
		return LeaveInterval{}, &InvalidDateError{
			AdmissionNumber: admissionNumber, Field: "leaving date", Value: startDate, Err: err,
		}
	}
	end, err := ParseCivilDate(endDate)
	if err != nil {
		return LeaveInterval{}, &InvalidDateError{
			AdmissionNumber: admissionNumber, Field: "returning date", Value: endDate, Err: err,
		}
	}
	return LeaveInterval{AdmissionNumber: admissionNumber, Start: start, End: end}, nil
}
