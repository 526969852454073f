package service

import "testing"

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "00:00"},
		{"Morning", "07:00"},
		{"after lunch, Afternoon", "13:30"},
		{"Evening", "17:00"},
		{"night", "20:00"},
		{"9:30", "09:30"},
		{"14:05", "14:05"},
		{"around 7:15 pm", "07:15"},
		{"soonish", "00:00"},
	}

	for _, tc := range cases {
		if got := NormalizeTime(tc.in); got != tc.want {
			t.Errorf("NormalizeTime(%q): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestCalculatePeriod(t *testing.T) {
	cases := []struct {
		name                       string
		ld, lt, rd, rt             string
		want                       string
	}{
		{"multi day", "2024-03-10", "Evening", "2024-03-14", "Morning", "3 day(s) 14 hour(s)"},
		{"same day hours", "2024-03-10", "07:00", "2024-03-10", "17:30", "10 hour(s) 30 min(s)"},
		{"whole hours", "2024-03-10", "07:00", "2024-03-10", "09:00", "2 hour(s)"},
		{"minutes only", "2024-03-10", "07:00", "2024-03-10", "07:45", "45 minute(s)"},
		{"missing field", "2024-03-10", "", "2024-03-14", "Morning", "-"},
		{"inverted range", "2024-03-14", "Morning", "2024-03-10", "Evening", "-"},
		{"bad date", "10/03/2024", "Morning", "2024-03-14", "Morning", "-"},
	}

	for _, tc := range cases {
		if got := CalculatePeriod(tc.ld, tc.lt, tc.rd, tc.rt); got != tc.want {
			t.Errorf("%s: want %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestCivilDateAddDaysCarries(t *testing.T) {
	d := NewCivilDate(2024, 2, 28)
	if got := d.AddDays(1).String(); got != "2024-02-29" {
		t.Errorf("leap carry: want 2024-02-29, got %s", got)
	}
	if got := d.AddDays(2).String(); got != "2024-03-01" {
		t.Errorf("month carry: want 2024-03-01, got %s", got)
	}

	eoy := NewCivilDate(2023, 12, 31)
	if got := eoy.AddDays(1).String(); got != "2024-01-01" {
		t.Errorf("year carry: want 2024-01-01, got %s", got)
	}
}
