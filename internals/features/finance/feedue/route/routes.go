package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeCtl "santhome_backend/internals/features/finance/feedue/controller"
)

// FeePublicRoutes holds the gateway webhook; it is signed by the gateway,
// not by a user token.
func FeePublicRoutes(r fiber.Router, db *gorm.DB) {
	payCtl := feeCtl.NewFeePaymentController(db)

	r.Post("/fees/payment/notification", payCtl.HandleNotification)
}

func FeeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := feeCtl.NewFeeDueController(db)
	payCtl := feeCtl.NewFeePaymentController(db)

	r.Get("/fees/get/:admissionNo", ctl.GetByAdmission)
	r.Post("/fees/payment/initiate", payCtl.Initiate)
	r.Get("/fees/payment/history/:admissionNo", payCtl.History)
}

func FeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := feeCtl.NewFeeDueController(db)

	r.Post("/fees/bulk", ctl.BulkAdd)
	r.Get("/fees/get", ctl.GetAll)
	r.Delete("/fees/bulk-delete", ctl.BulkDelete)
}
