package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockRe = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// NormalizeTime maps the loose time phrases the request form allows onto a
// HH:MM clock value (midpoint of the usual window). Unrecognized input
// falls back to midnight.
func NormalizeTime(timeStr string) string {
	if timeStr == "" {
		return "00:00"
	}
	str := strings.ToLower(timeStr)

	switch {
	case strings.Contains(str, "morning"):
		return "07:00" // midpoint of 6–8 AM
	case strings.Contains(str, "afternoon"):
		return "13:30" // midpoint of 1–3 PM
	case strings.Contains(str, "evening"):
		return "17:00" // midpoint of 4–6 PM
	case strings.Contains(str, "night"):
		return "20:00" // midpoint of 8–10 PM
	}

	if m := clockRe.FindStringSubmatch(str); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%02d:%02d", h, mm)
	}

	return "00:00"
}

// CalculatePeriod renders the span between leaving and returning as a
// human-readable duration ("2 day(s) 5 hour(s)"). Returns "-" when any
// part is missing, unparseable, or the range is inverted — the period is
// display-only, so a bad input must not fail the request.
func CalculatePeriod(leavingDate, leavingTime, returningDate, returningTime string) string {
	if leavingDate == "" || leavingTime == "" || returningDate == "" || returningTime == "" {
		return "-"
	}

	const layout = "2006-01-02 15:04"
	start, err := time.ParseInLocation(layout, leavingDate+" "+NormalizeTime(leavingTime), time.Local)
	if err != nil {
		return "-"
	}
	end, err := time.ParseInLocation(layout, returningDate+" "+NormalizeTime(returningTime), time.Local)
	if err != nil {
		return "-"
	}
	if end.Before(start) {
		return "-"
	}

	total := end.Sub(start)
	days := int(total / (24 * time.Hour))
	hours := int(total/time.Hour) % 24
	minutes := int(total/time.Minute) % 60

	switch {
	case days == 0 && hours == 0:
		return fmt.Sprintf("%d minute(s)", minutes)
	case days == 0:
		if minutes > 0 {
			return fmt.Sprintf("%d hour(s) %d min(s)", hours, minutes)
		}
		return fmt.Sprintf("%d hour(s)", hours)
	default:
		if minutes > 0 {
			return fmt.Sprintf("%d day(s) %d hour(s) %d min(s)", days, hours, minutes)
		}
		return fmt.Sprintf("%d day(s) %d hour(s)", days, hours)
	}
}
