package dto

import "testing"

func int64p(v int64) *int64 { return &v }

func TestFeeDueEntryValidate(t *testing.T) {
	cases := []struct {
		name       string
		entry      FeeDueEntry
		wantReason string
	}{
		{
			name:  "valid row",
			entry: FeeDueEntry{AdmissionNumber: "22B401", Name: "Anand", TotalDue: int64p(4500)},
		},
		{
			name:       "missing admission number",
			entry:      FeeDueEntry{Name: "Anand", TotalDue: int64p(4500)},
			wantReason: "Missing required fields (admissionNumber, name, totalDue)",
		},
		{
			name:       "missing total due",
			entry:      FeeDueEntry{AdmissionNumber: "22B401", Name: "Anand"},
			wantReason: "Missing required fields (admissionNumber, name, totalDue)",
		},
		{
			name:       "negative paid",
			entry:      FeeDueEntry{AdmissionNumber: "22B401", Name: "Anand", TotalPaid: -1, TotalDue: int64p(4500)},
			wantReason: "totalPaid / totalDue cannot be negative",
		},
		{
			name:       "negative due",
			entry:      FeeDueEntry{AdmissionNumber: "22B401", Name: "Anand", TotalDue: int64p(-10)},
			wantReason: "totalPaid / totalDue cannot be negative",
		},
		{
			// An explicit zero due is a settled account, not a missing field.
			name:  "zero due is valid",
			entry: FeeDueEntry{AdmissionNumber: "22B401", Name: "Anand", TotalDue: int64p(0)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.entry.Validate(); got != tc.wantReason {
				t.Errorf("Validate() = %q, want %q", got, tc.wantReason)
			}
		})
	}
}

func TestFeeDueEntryToModelTrims(t *testing.T) {
	entry := FeeDueEntry{
		AdmissionNumber: " 22B401 ",
		Name:            " Anand ",
		Branch:          "CSE",
		TotalPaid:       1000,
		TotalDue:        int64p(3500),
	}

	m := entry.ToModel()
	if m.FeeAdmissionNumber != "22B401" {
		t.Errorf("admission number = %q, want trimmed", m.FeeAdmissionNumber)
	}
	if m.FeeStudentName != "Anand" {
		t.Errorf("name = %q, want trimmed", m.FeeStudentName)
	}
	if m.FeeTotalPaid != 1000 || m.FeeTotalDue != 3500 {
		t.Errorf("amounts = %d/%d, want 1000/3500", m.FeeTotalPaid, m.FeeTotalDue)
	}
}
