package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer delivers the registration code. Services depend on the
// interface so tests can capture codes without an SMTP server.
type Mailer interface {
	SendOTP(to, code string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (m *SMTPMailer) SendOTP(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your OTP for Registration")
	msg.SetBody("text/plain", fmt.Sprintf("Your OTP is %s. It expires in 10 minutes.", code))
	return m.dialer.DialAndSend(msg)
}
