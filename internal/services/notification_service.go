// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/descg/descg-backend/internal/config"
	"github.com/descg/descg-backend/internal/models"
)

type NotificationService struct {
	config *config.Config
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{config: config}
}

var otpEmailTemplate = template.Must(template.New("otp").Parse(`
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>{{.Title}}</h2>
	<p>Your verification code is:</p>
	<p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.Code}}</p>
	<p>This code expires in 10 minutes. If you did not request it, you can ignore this email.</p>
</body>
</html>
`))

var otpSubjects = map[models.OTPType]string{
	models.OTPTypeRegistration:  "Confirm your registration",
	models.OTPTypePasswordReset: "Reset your password",
	models.OTPTypeLogin:         "Your login code",
}

func (s *NotificationService) SendOTPEmail(email, code string, otpType models.OTPType) error {
	subject, ok := otpSubjects[otpType]
	if !ok {
		subject = "Your verification code"
	}

	var body bytes.Buffer
	err := otpEmailTemplate.Execute(&body, map[string]string{
		"Title": subject,
		"Code":  code,
	})
	if err != nil {
		return fmt.Errorf("failed to render OTP email: %w", err)
	}

	return s.sendEmail(email, subject, body.String())
}

func (s *NotificationService) sendEmail(to, subject, htmlBody string) error {
	if s.config.Email.SMTPUsername == "" {
		// Local development without SMTP configured.
		return nil
	}

	auth := smtp.PlainAuth("",
		s.config.Email.SMTPUsername,
		s.config.Email.SMTPPassword,
		s.config.Email.SMTPHost,
	)

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.config.Email.FromName, s.config.Email.FromEmail, to, subject, htmlBody)

	addr := s.config.Email.SMTPHost + ":" + s.config.Email.SMTPPort
	if err := smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
