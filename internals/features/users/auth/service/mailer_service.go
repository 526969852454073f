package service

import (
	"context"
	"fmt"
	"time"

	"github.com/resend/resend-go/v2"

	"santhome_backend/internals/configs"
)

// SendOTPEmail delivers the reset code through Resend. The code is valid
// for five minutes; the template says so, keep them in sync.
func SendOTPEmail(ctx context.Context, toEmail, studentName, code string) error {
	if configs.ResendAPIKey == "" {
		return fmt.Errorf("mail provider not configured")
	}

	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 24px;">
			<h2 style="margin: 0 0 4px;">Santhome Information Management System</h2>
			<p style="color: #555; margin: 0 0 16px;">Jyothi Engineering College, Cheruthuruthy</p>
			<p>Dear <b>%s</b>,</p>
			<p>We received a request to reset the password on your account.
			Use the one-time password below to verify your identity:</p>
			<div style="background: #1976d2; color: #fff; text-align: center; font-size: 32px;
				font-weight: bold; letter-spacing: 4px; padding: 14px 0; border-radius: 8px;">%s</div>
			<p>This OTP is valid for <b>5 minutes</b>. Do not share it with anyone.</p>
			<p style="color: #666;">If you did not request this change you can safely ignore this message.</p>
		</div>`, studentName, code)

	client := resend.NewClient(configs.ResendAPIKey)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    configs.MailFrom,
		To:      []string{toEmail},
		Subject: "OTP Verification - Santhome Information Management System",
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	return nil
}
