package dto

import (
	"testing"

	model "santhome_backend/internals/features/outing/request/model"
)

func TestCreateOutingRequestToModel(t *testing.T) {
	req := CreateOutingRequest{
		AdmissionNumber: " 22B401 ",
		StudentName:     " Anand ",
		Date:            "2025-12-06",
		LeavingTime:     "morning",
		ReturningTime:   "18:30",
		Reason:          "Family function",
	}

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel() error = %v", err)
	}
	if m.OutingAdmissionNumber != "22B401" || m.OutingStudentName != "Anand" {
		t.Errorf("fields not trimmed: %q / %q", m.OutingAdmissionNumber, m.OutingStudentName)
	}
	// The month/year pair is what the one-per-month unique index keys on.
	if m.OutingMonth != 12 || m.OutingYear != 2025 {
		t.Errorf("month/year = %d/%d, want 12/2025", m.OutingMonth, m.OutingYear)
	}
	if m.OutingLeavingTime != "07:00" {
		t.Errorf("leaving time = %q, want normalized 07:00", m.OutingLeavingTime)
	}
	if m.OutingReturningTime != "18:30" {
		t.Errorf("returning time = %q, want 18:30", m.OutingReturningTime)
	}
	if m.OutingParentStatus != model.DecisionPending || m.OutingAdminStatus != model.DecisionPending {
		t.Errorf("statuses = %q/%q, want both %q", m.OutingParentStatus, m.OutingAdminStatus, model.DecisionPending)
	}
}

func TestCreateOutingRequestToModelBadDate(t *testing.T) {
	req := CreateOutingRequest{
		AdmissionNumber: "22B401",
		StudentName:     "Anand",
		Date:            "2025-13-06",
		LeavingTime:     "09:00",
		ReturningTime:   "18:30",
		Reason:          "Family function",
	}
	if _, err := req.ToModel(); err == nil {
		t.Fatal("expected error for invalid date")
	}
}
