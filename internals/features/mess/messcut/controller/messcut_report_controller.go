package controller

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messcutDTO "santhome_backend/internals/features/mess/messcut/dto"
	messcutModel "santhome_backend/internals/features/mess/messcut/model"
	messcutService "santhome_backend/internals/features/mess/messcut/service"
	studentModel "santhome_backend/internals/features/users/student/model"
	helper "santhome_backend/internals/helpers"
)

// MesscutReportController serves the mess office reports. All report
// endpoints work only on ACCEPTed requests unless noted.
type MesscutReportController struct {
	DB *gorm.DB
}

func NewMesscutReportController(db *gorm.DB) *MesscutReportController {
	return &MesscutReportController{DB: db}
}

// rosterByAdmission loads the students once per report request and keys
// them by admission number, so joins are one lookup per row.
func (h *MesscutReportController) rosterByAdmission() (map[string]studentModel.StudentModel, error) {
	var students []studentModel.StudentModel
	if err := h.DB.Find(&students).Error; err != nil {
		return nil, err
	}
	out := make(map[string]studentModel.StudentModel, len(students))
	for _, s := range students {
		out[s.StudentAdmissionNumber] = s
	}
	return out, nil
}

func (h *MesscutReportController) acceptedIntervals(admissionNumber string) ([]messcutService.LeaveInterval, error) {
	tx := h.DB.Where("messcut_status = ?", messcutModel.StatusAccept)
	if admissionNumber != "" {
		tx = tx.Where("messcut_admission_number = ?", admissionNumber)
	}

	var rows []messcutModel.MesscutModel
	if err := tx.Order("messcut_created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	intervals := make([]messcutService.LeaveInterval, 0, len(rows))
	for _, m := range rows {
		iv, err := messcutService.NewLeaveInterval(m.MesscutAdmissionNumber, m.MesscutLeavingDate, m.MesscutReturningDate)
		if err != nil {
			// a corrupt stored date silently skipped would under-count meals
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

// GET /api/messcut/report?admissionNumber= — accepted messcuts grouped per
// student, enriched with branch/sem, latest leaving date first.
func (h *MesscutReportController) SummaryReport(c *fiber.Ctx) error {
	admissionNumber := c.Query("admissionNumber")

	tx := h.DB.Where("messcut_status = ?", messcutModel.StatusAccept)
	if admissionNumber != "" {
		tx = tx.Where("messcut_admission_number = ?", admissionNumber)
	}

	var rows []messcutModel.MesscutModel
	if err := tx.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while generating report")
	}
	if len(rows) == 0 {
		return helper.Success(c, "No accepted messcut records found.", []messcutDTO.SummaryRow{})
	}

	type bucket struct {
		name     string
		count    int
		lastDate string
	}
	summary := make(map[string]*bucket)
	order := make([]string, 0)
	for _, m := range rows {
		b, ok := summary[m.MesscutAdmissionNumber]
		if !ok {
			b = &bucket{name: m.MesscutName}
			summary[m.MesscutAdmissionNumber] = b
			order = append(order, m.MesscutAdmissionNumber)
		}
		b.count++
		b.lastDate = m.MesscutLeavingDate
	}

	roster, err := h.rosterByAdmission()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while generating report")
	}

	report := make([]messcutDTO.SummaryRow, 0, len(order))
	for _, adm := range order {
		b := summary[adm]
		row := messcutDTO.SummaryRow{
			Name:            b.name,
			AdmissionNumber: adm,
			Branch:          "-",
			Semester:        "-",
			Count:           b.count,
			LastDate:        b.lastDate,
		}
		if s, ok := roster[adm]; ok {
			if s.StudentBranch != "" {
				row.Branch = s.StudentBranch
			}
			if s.StudentSemester != "" {
				row.Semester = s.StudentSemester
			}
		}
		report = append(report, row)
	}

	// YYYY-MM-DD strings order the same as dates
	sort.SliceStable(report, func(i, j int) bool {
		return report[i].LastDate > report[j].LastDate
	})

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"count": len(report),
		"data":  report,
	})
}

// GET /api/messcut/student?admissionNo= — accepted records for one student
func (h *MesscutReportController) StudentDetails(c *fiber.Ctx) error {
	admissionNo := c.Query("admissionNo")
	if admissionNo == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Admission number is required.")
	}

	var rows []messcutModel.MesscutModel
	if err := h.DB.
		Where("messcut_admission_number = ? AND messcut_status = ?", admissionNo, messcutModel.StatusAccept).
		Order("messcut_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while fetching messcut details.")
	}

	if len(rows) == 0 {
		return helper.Success(c, "No accepted messcut records found for this student.", []*messcutDTO.MesscutResponse{})
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"count": len(rows),
		"data":  messcutDTO.NewMesscutResponses(rows),
	})
}

// GET /api/messcut/all-details — every record joined with roster details
func (h *MesscutReportController) AllDetails(c *fiber.Ctx) error {
	var rows []messcutModel.MesscutModel
	if err := h.DB.Order("messcut_created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while fetching messcut data.")
	}
	if len(rows) == 0 {
		return helper.Success(c, "No messcut records found.", []messcutDTO.DetailRow{})
	}

	roster, err := h.rosterByAdmission()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while fetching messcut data.")
	}

	data := make([]messcutDTO.DetailRow, 0, len(rows))
	for _, m := range rows {
		row := messcutDTO.DetailRow{
			Name:            m.MesscutName,
			AdmissionNumber: m.MesscutAdmissionNumber,
			Branch:          "-",
			Semester:        "-",
			LeavingDate:     m.MesscutLeavingDate,
			ReturningDate:   m.MesscutReturningDate,
			Reason:          m.MesscutReason,
			Status:          m.MesscutStatus,
			CreatedAt:       m.MesscutCreatedAt,
		}
		if s, ok := roster[m.MesscutAdmissionNumber]; ok {
			if s.StudentBranch != "" {
				row.Branch = s.StudentBranch
			}
			if s.StudentSemester != "" {
				row.Semester = s.StudentSemester
			}
		}
		data = append(data, row)
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"count": len(data),
		"data":  data,
	})
}

// GET /api/messcut/by-date?date= — students strictly inside a leave on
// that date (departure and return days are excluded: they still eat).
func (h *MesscutReportController) ByDate(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Date is required")
	}
	selected, err := messcutService.ParseCivilDate(dateStr)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	var rows []messcutModel.MesscutModel
	if err := h.DB.Where("messcut_status = ?", messcutModel.StatusAccept).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	data := make([]messcutDTO.ByDateRow, 0)
	for _, m := range rows {
		iv, err := messcutService.NewLeaveInterval(m.MesscutAdmissionNumber, m.MesscutLeavingDate, m.MesscutReturningDate)
		if err != nil {
			log.Printf("[ERROR] messcut by-date: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Server error")
		}
		if selected.After(iv.Start) && selected.Before(iv.End) {
			data = append(data, messcutDTO.ByDateRow{
				AdmissionNumber: m.MesscutAdmissionNumber,
				Name:            m.MesscutName,
				RoomNumber:      m.MesscutRoomNumber,
				Messcut:         true,
			})
		}
	}

	return helper.Success(c, "OK", data)
}

// GET /api/messcut/by-datereport?date= — meal cross-section of the whole
// roster for one date. Students without an accepted leave are PRESENT.
func (h *MesscutReportController) DateWiseReport(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Date is required")
	}
	selected, err := messcutService.ParseCivilDate(dateStr)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	var students []studentModel.StudentModel
	if err := h.DB.Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	intervals, err := h.acceptedIntervals("")
	if err != nil {
		var invalidDate *messcutService.InvalidDateError
		if errors.As(err, &invalidDate) {
			log.Printf("[ERROR] messcut date-wise report: %v", err)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	byStudent := messcutService.IndexByAdmission(intervals)

	data := make([]messcutDTO.DateWiseRow, 0, len(students))
	for _, s := range students {
		cls := messcutService.ClassifyDay(selected, byStudent[s.StudentAdmissionNumber])
		data = append(data, messcutDTO.DateWiseRow{
			Name:            s.StudentName,
			AdmissionNumber: s.StudentAdmissionNumber,
			Branch:          s.StudentBranch,
			Semester:        s.StudentSemester,
			RoomNumber:      s.StudentRoomNumber,
			DayType:         cls.DayType,
			Meals:           cls.Meals,
		})
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"count": len(data),
		"data":  data,
	})
}

// GET /api/messcut/month-wise?admissionNumber=&month=YYYY-MM — full month
// walk for one student.
func (h *MesscutReportController) MonthWiseReport(c *fiber.Ctx) error {
	admissionNumber := c.Query("admissionNumber")
	if admissionNumber == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Admission number required")
	}
	monthStr := c.Query("month")
	if monthStr == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Month required (YYYY-MM)")
	}

	year, month, err := parseYearMonth(monthStr)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid month, expected YYYY-MM")
	}

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_admission_number = ?", admissionNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	intervals, err := h.acceptedIntervals(admissionNumber)
	if err != nil {
		log.Printf("[ERROR] messcut month report: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	days, err := messcutService.WalkMonth(year, month, intervals)
	if err != nil {
		var invalidMonth *messcutService.InvalidMonthError
		if errors.As(err, &invalidMonth) {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid month, expected YYYY-MM")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	data := make([]messcutDTO.MonthDayRow, 0, len(days))
	for _, d := range days {
		data = append(data, messcutDTO.NewMonthDayRow(d))
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"student": messcutDTO.MonthReportStudent{
			Name:            student.StudentName,
			AdmissionNumber: student.StudentAdmissionNumber,
			Semester:        student.StudentSemester,
			Branch:          student.StudentBranch,
			RoomNumber:      student.StudentRoomNumber,
		},
		"month": monthStr,
		"count": len(data),
		"data":  data,
	})
}

func parseYearMonth(s string) (int, time.Month, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed month %q", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	mon, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if mon < 1 || mon > 12 {
		return 0, 0, &messcutService.InvalidMonthError{Month: mon}
	}
	return year, time.Month(mon), nil
}
