package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeRoute "santhome_backend/internals/features/finance/feedue/route"
	apologyRoute "santhome_backend/internals/features/hostel/apology/route"
	attendanceRoute "santhome_backend/internals/features/hostel/attendance/route"
	complaintRoute "santhome_backend/internals/features/hostel/complaint/route"
	holidayRoute "santhome_backend/internals/features/hostel/holiday/route"
	mealtimeRoute "santhome_backend/internals/features/mess/mealtime/route"
	messcutRoute "santhome_backend/internals/features/mess/messcut/route"
	eligibilityRoute "santhome_backend/internals/features/outing/eligibility/route"
	outingRoute "santhome_backend/internals/features/outing/request/route"
	parentRoute "santhome_backend/internals/features/users/parent/route"
	studentRoute "santhome_backend/internals/features/users/student/route"
)

// AdminRoutes: warden and office accounts only.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	studentRoute.StudentAdminRoutes(r, db)
	parentRoute.ParentAdminRoutes(r, db)
	messcutRoute.MesscutAdminRoutes(r, db)
	mealtimeRoute.MealTimeAdminRoutes(r, db)
	complaintRoute.ComplaintAdminRoutes(r, db)
	apologyRoute.ApologyAdminRoutes(r, db)
	holidayRoute.HolidayAdminRoutes(r, db)
	attendanceRoute.AttendanceAdminRoutes(r, db)
	outingRoute.OutingAdminRoutes(r, db)
	eligibilityRoute.EligibilityAdminRoutes(r, db)
	feeRoute.FeeAdminRoutes(r, db)
}
