package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"movebot/config"
	"movebot/utils"

	"go.uber.org/zap"
)

// SMTPMailer delivers mail through the configured SMTP relay. net/smtp
// upgrades to STARTTLS when the server offers it.
type SMTPMailer struct {
	Server   string
	Port     int
	From     string
	Password string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		Server:   config.AppConfig.SMTPServer,
		Port:     config.AppConfig.SMTPPort,
		From:     config.AppConfig.EmailAddress,
		Password: config.AppConfig.EmailPassword,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.Server == "" || m.From == "" {
		return fmt.Errorf("smtp not configured")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.From, to, subject, htmlBody)

	addr := fmt.Sprintf("%s:%d", m.Server, m.Port)
	auth := smtp.PlainAuth("", m.From, m.Password, m.Server)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg))
	}()
	select {
	case err := <-done:
		if err != nil {
			utils.GetLogger().Error("Failed to send email", zap.String("to", to), zap.Error(err))
			return err
		}
		utils.GetLogger().Info("Email sent", zap.String("to", to), zap.String("subject", subject))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
