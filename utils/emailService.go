package utils

import (
	"fmt"
	"lms/config"
	courseModels "lms/models/course"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Course Academy <%s>\r\n", from)
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

// HTML wrapper shared by all triggers
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1F2937; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1F2937; line-height: 1.6; }
			.content h2 { color: #1F2937; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #2563EB; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>COURSE ACADEMY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Course Academy. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to Course Academy"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Course Academy</strong>! We are thrilled to have you onboard.</p>
		<p>Your account has been successfully created. You can now browse our courses and let us know which ones interest you.</p>
		<p>If you have any questions, feel free to reach out to our support team.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Interest received
func SendInterestReceivedEmail(email, name, courseName string) {
	subject := "We received your interest: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thanks for showing interest in <strong>%s</strong>.</p>
		<p>Our team will contact you shortly with enrollment details.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Keep your phone reachable — we usually call within one business day.
		</div>
	`, name, courseName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Interest Received", body))
}

// 3. Status moved by admin (contacted / enrolled)
func SendInterestStatusEmail(email, name, courseName, status string) {
	var subject, body string

	switch status {
	case courseModels.StatusContacted:
		subject = "Update on your interest: " + courseName
		body = fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Our team has reviewed your interest in <strong>%s</strong> and will be reaching out to you.</p>
		`, name, courseName)
	case courseModels.StatusEnrolled:
		subject = "Enrollment confirmed: " + courseName
		body = fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Congratulations! Your enrollment in <strong>%s</strong> is confirmed.</p>
			<div class="info-box">
				Course access details will follow in a separate email.
			</div>
		`, name, courseName)
	default:
		return
	}

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Update", body))
}

// 4. Daily pending digest to admin
func SendPendingDigestEmail(adminEmail string, interests []courseModels.CourseInterest) {
	if adminEmail == "" || len(interests) == 0 {
		return
	}

	subject := fmt.Sprintf("%d pending course interests awaiting follow-up", len(interests))

	var rows strings.Builder
	for _, i := range interests {
		rows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
			i.CourseName, i.UserName, i.UserEmail, i.UserPhone,
		))
	}

	body := fmt.Sprintf(`
		<p>The following interest records are still pending:</p>
		<table width="100%%" cellpadding="6" style="border-collapse: collapse; font-size: 14px;">
			<tr style="background: #E8F0FE;"><th>Course</th><th>Name</th><th>Email</th><th>Phone</th></tr>
			%s
		</table>
	`, rows.String())

	go SendEmail([]string{adminEmail}, subject, getEmailTemplate("Pending Interests Digest", body))
}
