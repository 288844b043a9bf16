// Package email sends transactional mail over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/menuqr-inc/menuqr/internal/infrastructure/config"
)

type SMTPService struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPService(cfg config.EmailConfig) *SMTPService {
	return &SMTPService{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendPasswordReset mails a reset link containing the one-time token.
func (s *SMTPService) SendPasswordReset(to, resetURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Reset your MenuQR password")
	m.SetBody("text/plain", fmt.Sprintf(
		"We received a request to reset your password.\n\n"+
			"Open the link below to choose a new one. The link expires in one hour.\n\n%s\n\n"+
			"If you did not request this, you can ignore this email.", resetURL))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}
