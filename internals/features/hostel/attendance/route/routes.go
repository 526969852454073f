package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceCtl "santhome_backend/internals/features/hostel/attendance/controller"
)

func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.NewAttendanceController(db)

	r.Get("/attendance/parent/today", ctl.ParentToday)
	r.Get("/attendance/parent/absent-history", ctl.ParentAbsentHistory)
}

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.NewAttendanceController(db)

	r.Post("/attendance/save", ctl.Save)
	r.Get("/attendance/by-date", ctl.GetByDate)
	r.Get("/attendance/absentees", ctl.Absentees)
	r.Put("/attendance/publish", ctl.Publish)
	r.Get("/attendance/monthly", ctl.MonthlyRegister)
}
