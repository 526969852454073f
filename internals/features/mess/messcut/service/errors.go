package service

import "fmt"

// InvalidDateError reports a stored interval date that cannot be parsed as
// YYYY-MM-DD. The caller decides whether to skip the record or abort.
type InvalidDateError struct {
	AdmissionNumber string
	Field           string
	Value           string
	Err             error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s %q for admission %s: %v", e.Field, e.Value, e.AdmissionNumber, e.Err)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

// InvalidMonthError reports a month parameter outside 1–12.
type InvalidMonthError struct {
	Month int
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("month out of range: %d", e.Month)
}
