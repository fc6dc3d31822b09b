// Package mailer delivers one-time passcodes over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"

	"finesight-api/pkg/config"
)

type Mailer interface {
	SendOtp(to, otp string) error
}

type smtpMailer struct {
	host     string
	port     string
	username string
	password string
}

func NewSmtpMailer(smtpConfig config.SmtpConfig) Mailer {
	return &smtpMailer{
		host:     smtpConfig.Host,
		port:     smtpConfig.Port,
		username: smtpConfig.Username,
		password: smtpConfig.Password,
	}
}

func (m *smtpMailer) SendOtp(to, otp string) error {
	if m.host == "" {
		return fmt.Errorf("smtp host is not configured")
	}

	subject := "Your OTP Code"
	body := fmt.Sprintf("Your OTP code is: %s", otp)
	message := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.username, to, subject, body,
	))

	address := fmt.Sprintf("%s:%s", m.host, m.port)
	smtpAuth := smtp.PlainAuth("", m.username, m.password, m.host)

	return smtp.SendMail(address, smtpAuth, m.username, []string{to}, message)
}
