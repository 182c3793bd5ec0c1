package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"uplearn/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: UpLearn <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML Wrapper shared by all outbound emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A40; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A40; line-height: 1.6; }
			.content h2 { color: #1A1A40; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #FFD60A; color: #1A1A40; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.code-box { background: #E8F0FE; padding: 15px; border-radius: 4px; text-align: center; font-size: 32px; letter-spacing: 6px; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>UPLEARN</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 UpLearn. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Signup OTP
func SendOTPEmail(email, otp string) {
	subject := "OTP Verification Code for UpLearn"
	body := fmt.Sprintf(`
		<p>Your One Time Password (OTP) is:</p>
		<div class="code-box">%s</div>
		<p>Do not share this OTP with anyone. It is valid for 10 minutes.</p>
	`, otp)

	go SendEmail([]string{email}, subject, getEmailTemplate("Verify Your Email", body))
}

// 2. Welcome after signup
func SendWelcomeEmail(email, firstName string) {
	subject := "Welcome to UpLearn"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>UpLearn</strong>! Your account has been created successfully.</p>
		<p>Browse our catalog and start learning today.</p>
	`, firstName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 3. Course enrollment confirmation
func SendEnrollmentEmail(email, firstName, courseName string) {
	subject := "Course Enrollment Confirmation - UpLearn"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You have successfully enrolled in:</p>
		<h3 style="text-align: center;">%s</h3>
		<p>You can now access all the course content and start learning.</p>
	`, firstName, courseName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Successful!", body))
}

// 4. Password reset link
func SendResetPasswordEmail(email, resetURL string) {
	subject := "Password Reset - UpLearn"
	body := fmt.Sprintf(`
		<p>We received a request to reset your password.</p>
		<p style="text-align: center;"><a class="btn" href="%s">Reset Password</a></p>
		<p>This link expires in 5 minutes. If you did not request a reset, you can safely ignore this email.</p>
	`, resetURL)

	go SendEmail([]string{email}, subject, getEmailTemplate("Reset Your Password", body))
}

// 5. Password changed notification
func SendPasswordUpdatedEmail(email, firstName string) {
	subject := "Your UpLearn Password Was Changed"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your account password was just updated.</p>
		<p>If this was not you, please reset your password immediately.</p>
	`, firstName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Password Updated", body))
}
