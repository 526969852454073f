package dto

import (
	model "santhome_backend/internals/features/hostel/attendance/model"
)

type AttendanceRecord struct {
	AdmissionNumber string `json:"admissionNumber" validate:"required,max=40"`
	Name            string `json:"name"`
	Semester        string `json:"semester"`
	RoomNumber      string `json:"roomNo"`
	Messcut         bool   `json:"messcut"`
	Present         bool   `json:"attendance"`
	Selected        bool   `json:"selected"`
}

type SaveAttendanceRequest struct {
	Date    string             `json:"date" validate:"required,datetime=2006-01-02"`
	Records []AttendanceRecord `json:"records" validate:"required,min=1,dive"`
}

func (r AttendanceRecord) ToModel(date string) *model.AttendanceModel {
	return &model.AttendanceModel{
		AttendanceDate:            date,
		AttendanceAdmissionNumber: r.AdmissionNumber,
		AttendanceStudentName:     r.Name,
		AttendanceSemester:        r.Semester,
		AttendanceRoomNumber:      r.RoomNumber,
		AttendanceMesscut:         r.Messcut,
		AttendancePresent:         r.Present,
		AttendanceSelected:        r.Selected,
		AttendancePublished:       model.PublishNone,
	}
}

type PublishAttendanceRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// SheetRow is the roster merged with whatever marks were already saved,
// so the warden can re-open a half-finished sheet.
type SheetRow struct {
	SlNo            int    `json:"slno"`
	AdmissionNumber string `json:"admissionNumber"`
	Name            string `json:"name"`
	Semester        string `json:"semester"`
	RoomNumber      string `json:"roomNo"`
	Messcut         bool   `json:"messcut"`
	Present         bool   `json:"attendance"`
	Selected        bool   `json:"selected"`
}

type AbsenteeRow struct {
	SlNo       int    `json:"slno"`
	Semester   string `json:"semester"`
	RoomNumber string `json:"roomNo"`
	Name       string `json:"name"`
}
