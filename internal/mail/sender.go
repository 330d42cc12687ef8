package mail

import (
	"crm/config"
	"crm/internal/logger"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers composed quick messages by email. Delivery is best
// effort: the communication log is the system of record, so callers log
// send failures without rolling anything back.
type Sender interface {
	Enabled() bool
	SendQuickMessage(to, recruitName, body string) error
}

func New(config config.Config) Sender {
	if !config.MailEnabled() {
		return &noopSender{log: logger.New("mail")}
	}

	return &smtpSender{
		host:     config.SMTPHost,
		port:     config.SMTPPort,
		username: config.SMTPUsername,
		password: config.SMTPPassword,
		from:     config.SMTPFrom,
		log:      logger.New("mail"),
	}
}

type smtpSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	log      logger.Logger
}

func (s *smtpSender) Enabled() bool {
	return true
}

func (s *smtpSender) SendQuickMessage(to, recruitName, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Checking in, %s!", recruitName))
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send quick message: %w", err)
	}

	s.log.Function("SendQuickMessage").Info("quick message delivered", "to", to)
	return nil
}

type noopSender struct {
	log logger.Logger
}

func (s *noopSender) Enabled() bool {
	return false
}

func (s *noopSender) SendQuickMessage(to, recruitName, body string) error {
	s.log.Function("SendQuickMessage").
		Debug("mail disabled, message recorded only", "to", to)
	return nil
}
