package model

import (
	"testing"
	"time"
)

func TestOTPExpired(t *testing.T) {
	issued := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	otp := OTPModel{
		OTPEmail:     "anand@example.com",
		OTPCode:      "483921",
		OTPExpiresAt: issued.Add(5 * time.Minute),
	}

	if otp.Expired(issued) {
		t.Error("fresh OTP reported expired")
	}
	if otp.Expired(issued.Add(5 * time.Minute)) {
		t.Error("OTP at exact expiry should still verify")
	}
	if !otp.Expired(issued.Add(5*time.Minute + time.Second)) {
		t.Error("OTP past expiry not reported expired")
	}
}
