package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendWelcome greets a freshly assigned client. Plain text for now; a
// template can replace the body once marketing hands one over.
func (s *EmailSender) SendWelcome(to, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Welcome to Interview Me, %s!", name))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYou're in. A recruiting agent has been assigned to you and "+
			"will reach out shortly to kick off your job search.\n\n— The Interview Me team\n",
		name,
	))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP mail: %w", err)
	}

	return nil
}
