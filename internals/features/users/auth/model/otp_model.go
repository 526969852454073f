package model

import (
	"time"

	"github.com/google/uuid"
)

// OTPModel is one outstanding password-reset code. Old rows for the same
// email are removed before a new one is issued.
type OTPModel struct {
	OTPID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:otp_id" json:"otp_id"`
	OTPEmail     string    `gorm:"size:255;not null;index;column:otp_email" json:"otp_email"`
	OTPCode      string    `gorm:"size:6;not null;column:otp_code" json:"-"`
	OTPExpiresAt time.Time `gorm:"not null;column:otp_expires_at" json:"otp_expires_at"`
	OTPCreatedAt time.Time `gorm:"autoCreateTime;column:otp_created_at" json:"otp_created_at"`
}

func (OTPModel) TableName() string { return "password_reset_otps" }

func (o OTPModel) Expired(now time.Time) bool {
	return now.After(o.OTPExpiresAt)
}
