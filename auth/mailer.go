package auth

import (
	"fmt"
	"net/smtp"
	"os"
)

// Mailer delivers verification emails. Tests substitute a fake.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends through the configured SMTP relay.
type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		host: os.Getenv("SMTP_HOST"),
		port: os.Getenv("SMTP_PORT"),
		user: os.Getenv("SMTP_USER"),
		pass: os.Getenv("SMTP_PASSWORD"),
		from: os.Getenv("SMTP_FROM"),
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.host == "" {
		return fmt.Errorf("smtp configuration missing")
	}
	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n\r\n" +
		body + "\r\n")
	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(addr, auth, m.from, []string{to}, msg)
}
