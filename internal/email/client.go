package email

import (
	"agendamentos/internal/config"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Dialer envia mensagens já montadas; *gomail.Dialer satisfaz a interface.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailService struct {
	cfg    *config.Config
	dialer Dialer
}

// NewEmailService cria uma nova instância do serviço de email
func NewEmailService(cfg *config.Config) (*EmailService, error) {
	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		return nil, fmt.Errorf("SMTP credentials not configured")
	}
	if cfg.NotifyEmailTo == "" {
		return nil, fmt.Errorf("NOTIFY_EMAIL_TO not configured")
	}

	dialer := gomail.NewDialer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
	)

	return NewWithDialer(cfg, dialer), nil
}

func NewWithDialer(cfg *config.Config, dialer Dialer) *EmailService {
	return &EmailService{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (s *EmailService) from() string {
	addr := s.cfg.SMTPFromEmail
	if addr == "" {
		addr = s.cfg.SMTPUsername
	}
	return fmt.Sprintf("%s <%s>", s.cfg.SMTPFromName, addr)
}

// SendEmail envia um email com HTML
func (s *EmailService) SendEmail(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from())
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
