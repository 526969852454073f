package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceDTO "santhome_backend/internals/features/hostel/attendance/dto"
	attendanceModel "santhome_backend/internals/features/hostel/attendance/model"
	attendanceService "santhome_backend/internals/features/hostel/attendance/service"
	studentModel "santhome_backend/internals/features/users/student/model"
	helper "santhome_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validateAttendance = validator.New()

// POST /attendance/save
// Re-saving a sheet overwrites the marks for that day, one row per student.
func (h *AttendanceController) Save(c *fiber.Ctx) error {
	var req attendanceDTO.SaveAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateAttendance.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rows := make([]attendanceModel.AttendanceModel, 0, len(req.Records))
	for _, rec := range req.Records {
		rows = append(rows, *rec.ToModel(req.Date))
	}

	err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "attendance_date"}, {Name: "attendance_admission_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_student_name",
			"attendance_semester",
			"attendance_room_number",
			"attendance_messcut",
			"attendance_present",
			"attendance_selected",
		}),
	}).Create(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Attendance saved successfully!", nil)
}

// GET /attendance/by-date?date=YYYY-MM-DD
// Returns the full roster merged with any marks already saved for the day.
func (h *AttendanceController) GetByDate(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Date is required")
	}

	var students []studentModel.StudentModel
	if err := h.DB.Order("student_admission_number ASC").Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	var marks []attendanceModel.AttendanceModel
	if err := h.DB.Where("attendance_date = ?", date).Find(&marks).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	byAdmission := make(map[string]*attendanceModel.AttendanceModel, len(marks))
	for i := range marks {
		byAdmission[marks[i].AttendanceAdmissionNumber] = &marks[i]
	}

	sheet := make([]attendanceDTO.SheetRow, 0, len(students))
	for i, std := range students {
		row := attendanceDTO.SheetRow{
			SlNo:            i + 1,
			AdmissionNumber: std.StudentAdmissionNumber,
			Name:            std.StudentName,
			Semester:        std.StudentSemester,
			RoomNumber:      std.StudentRoomNumber,
		}
		if rec := byAdmission[std.StudentAdmissionNumber]; rec != nil {
			row.Messcut = rec.AttendanceMesscut
			row.Present = rec.AttendancePresent
			row.Selected = rec.AttendanceSelected
		}
		sheet = append(sheet, row)
	}

	return helper.Success(c, "OK", sheet)
}

// GET /attendance/absentees?date=YYYY-MM-DD
// A student with no record for the day counts absent.
func (h *AttendanceController) Absentees(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Date is required")
	}

	var students []studentModel.StudentModel
	if err := h.DB.Order("student_admission_number ASC").Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	var marks []attendanceModel.AttendanceModel
	if err := h.DB.Where("attendance_date = ?", date).Find(&marks).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	presentByAdmission := make(map[string]bool, len(marks))
	for _, rec := range marks {
		presentByAdmission[rec.AttendanceAdmissionNumber] = rec.AttendancePresent
	}

	absentees := make([]attendanceDTO.AbsenteeRow, 0)
	for _, std := range students {
		if presentByAdmission[std.StudentAdmissionNumber] {
			continue
		}
		absentees = append(absentees, attendanceDTO.AbsenteeRow{
			SlNo:       len(absentees) + 1,
			Semester:   std.StudentSemester,
			RoomNumber: std.StudentRoomNumber,
			Name:       std.StudentName,
		})
	}

	return helper.Success(c, "OK", absentees)
}

// PUT /attendance/publish
// Marks a day's sheet visible to parents.
func (h *AttendanceController) Publish(c *fiber.Ctx) error {
	var req attendanceDTO.PublishAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateAttendance.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	err := h.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_date = ?", req.Date).
		Update("attendance_published", attendanceModel.PublishPublished).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Attendance published successfully", nil)
}

// GET /attendance/parent/today?admissionNo=
// Parents see nothing until the warden publishes the sheet, and then
// only whether the student was absent.
func (h *AttendanceController) ParentToday(c *fiber.Ctx) error {
	admissionNo := c.Query("admissionNo")
	if admissionNo == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Admission number required")
	}

	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.Local
	}
	today := time.Now().In(loc).Format("2006-01-02")

	var rec attendanceModel.AttendanceModel
	err = h.DB.
		Where("attendance_admission_number = ? AND attendance_date = ?", admissionNo, today).
		First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
				"published": "none",
				"absent":    false,
				"message":   "No attendance marked today",
			})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	if rec.AttendancePublished != attendanceModel.PublishPublished {
		return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
			"published": rec.AttendancePublished,
			"absent":    false,
			"message":   "Attendance not published",
		})
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"published": attendanceModel.PublishPublished,
		"absent":    !rec.AttendancePresent,
		"data":      fiber.Map{"date": rec.AttendanceDate},
	})
}

// GET /attendance/parent/absent-history?admissionNo=
func (h *AttendanceController) ParentAbsentHistory(c *fiber.Ctx) error {
	admissionNo := c.Query("admissionNo")
	if admissionNo == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Admission number required")
	}

	var dates []string
	err := h.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_admission_number = ? AND attendance_present = ? AND attendance_published = ?",
			admissionNo, false, attendanceModel.PublishPublished).
		Order("attendance_date DESC").
		Pluck("attendance_date", &dates).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"count": len(dates),
		"data":  dates,
	})
}

// GET /attendance/monthly?month=YYYY-MM
func (h *AttendanceController) MonthlyRegister(c *fiber.Ctx) error {
	monthStr := c.Query("month")
	parts := strings.SplitN(monthStr, "-", 2)
	if monthStr == "" || len(parts) != 2 {
		return helper.Error(c, fiber.StatusBadRequest, "Month is required (YYYY-MM)")
	}
	firstDay, err := time.ParseInLocation("2006-01-02", monthStr+"-01", time.Local)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Month is required (YYYY-MM)")
	}
	year, month := firstDay.Year(), firstDay.Month()

	var students []studentModel.StudentModel
	if err := h.DB.Order("student_admission_number ASC").Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	var marks []attendanceModel.AttendanceModel
	if err := h.DB.
		Where("attendance_date >= ? AND attendance_date <= ?",
			firstDay.Format("2006-01-02"),
			time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Format("2006-01-02")).
		Find(&marks).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	roster := make([]attendanceService.RosterEntry, 0, len(students))
	for _, std := range students {
		roster = append(roster, attendanceService.RosterEntry{
			AdmissionNumber: std.StudentAdmissionNumber,
			Name:            std.StudentName,
			Semester:        std.StudentSemester,
			RoomNumber:      std.StudentRoomNumber,
		})
	}
	entries := make([]attendanceService.Mark, 0, len(marks))
	for _, rec := range marks {
		entries = append(entries, attendanceService.Mark{
			AdmissionNumber: rec.AttendanceAdmissionNumber,
			Date:            rec.AttendanceDate,
			Present:         rec.AttendancePresent,
		})
	}

	rows, days, err := attendanceService.BuildMonthlyRegister(year, month, roster, entries)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Month is required (YYYY-MM)")
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"daysInMonth": days,
		"data":        rows,
	})
}
