package service

import (
	"fmt"
	"time"
)

// CivilDate is a local calendar date. Mess-cut dates are stored as
// YYYY-MM-DD strings and must be compared as date-only values, never as
// instants — parsing them as UTC shifts them a day west of IST.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

const civilDateLayout = "2006-01-02"

func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.ParseInLocation(civilDateLayout, s, time.Local)
	if err != nil {
		return CivilDate{}, err
	}
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func NewCivilDate(year int, month time.Month, day int) CivilDate {
	return CivilDate{Year: year, Month: month, Day: day}
}

// CivilDateOf truncates a time to its local calendar date.
func CivilDateOf(t time.Time) CivilDate {
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0, or 1.
func (d CivilDate) Compare(o CivilDate) int {
	a := d.ordinal()
	b := o.ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (d CivilDate) Equal(o CivilDate) bool  { return d.Compare(o) == 0 }
func (d CivilDate) Before(o CivilDate) bool { return d.Compare(o) < 0 }
func (d CivilDate) After(o CivilDate) bool  { return d.Compare(o) > 0 }

// AddDays relies on time.Date normalization, so month/year carry is free.
func (d CivilDate) AddDays(n int) CivilDate {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.Local)
	return CivilDateOf(t)
}

func (d CivilDate) ordinal() int {
	return d.Year*10000 + int(d.Month)*100 + d.Day
}

// DaysIn returns the number of calendar days in (year, month).
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
