package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeeDueModel is the mess bill ledger uploaded by the office, one row per
// student. Amounts are whole rupees.
type FeeDueModel struct {
	FeeID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fee_id" json:"fee_id"`
	FeeAdmissionNumber string    `gorm:"size:40;not null;uniqueIndex;column:fee_admission_number" json:"fee_admission_number"`
	FeeStudentName     string    `gorm:"size:120;not null;column:fee_student_name" json:"fee_student_name"`
	FeeBranch          string    `gorm:"size:80;column:fee_branch" json:"fee_branch"`
	FeeSemester        string    `gorm:"size:10;column:fee_semester" json:"fee_semester"`
	FeePhoneNumber     string    `gorm:"size:20;column:fee_phone_number" json:"fee_phone_number"`
	FeeTotalPaid       int64     `gorm:"not null;default:0;column:fee_total_paid" json:"fee_total_paid"`
	FeeTotalDue        int64     `gorm:"not null;default:0;column:fee_total_due" json:"fee_total_due"`
	FeeCreatedAt       time.Time `gorm:"autoCreateTime;column:fee_created_at" json:"fee_created_at"`
	FeeUpdatedAt       time.Time `gorm:"autoUpdateTime;column:fee_updated_at" json:"fee_updated_at"`
}

func (FeeDueModel) TableName() string { return "fee_dues" }

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// FeePaymentModel is one gateway transaction against a fee due. The raw
// notification body is kept verbatim for reconciliation.
type FeePaymentModel struct {
	PaymentID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:payment_id" json:"payment_id"`
	PaymentOrderID         string         `gorm:"size:64;not null;uniqueIndex;column:payment_order_id" json:"payment_order_id"`
	PaymentAdmissionNumber string         `gorm:"size:40;not null;index;column:payment_admission_number" json:"payment_admission_number"`
	PaymentAmount          int64          `gorm:"not null;column:payment_amount" json:"payment_amount"`
	PaymentStatus          string         `gorm:"size:12;not null;default:'pending';column:payment_status" json:"payment_status"`
	PaymentGateway         string         `gorm:"size:20;not null;default:'midtrans';column:payment_gateway" json:"payment_gateway"`
	PaymentSnapToken       string         `gorm:"size:128;column:payment_snap_token" json:"payment_snap_token,omitempty"`
	PaymentRawNotification datatypes.JSON `gorm:"column:payment_raw_notification" json:"payment_raw_notification,omitempty"`
	PaymentCreatedAt       time.Time      `gorm:"autoCreateTime;column:payment_created_at" json:"payment_created_at"`
	PaymentUpdatedAt       time.Time      `gorm:"autoUpdateTime;column:payment_updated_at" json:"payment_updated_at"`
}

func (FeePaymentModel) TableName() string { return "fee_payments" }
