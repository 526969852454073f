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
	authRoute "santhome_backend/internals/features/users/auth/route"
	studentRoute "santhome_backend/internals/features/users/student/route"
)

// UserRoutes: any authenticated account (student or parent).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(r, db)
	studentRoute.StudentUserRoutes(r, db)
	messcutRoute.MesscutUserRoutes(r, db)
	mealtimeRoute.MealTimeUserRoutes(r, db)
	complaintRoute.ComplaintUserRoutes(r, db)
	apologyRoute.ApologyUserRoutes(r, db)
	holidayRoute.HolidayUserRoutes(r, db)
	attendanceRoute.AttendanceUserRoutes(r, db)
	outingRoute.OutingUserRoutes(r, db)
	eligibilityRoute.EligibilityUserRoutes(r, db)
	feeRoute.FeeUserRoutes(r, db)
}
