package mailing

import (
	"Pickup-Order-System/internal/utils"
	"errors"
	"gopkg.in/gomail.v2"
	"strconv"
)

var ErrMailNotConfigured = errors.New("smtp is not configured")

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// Mailer is the outbound mail channel used for shop inbox copies of notifications.
type Mailer interface {
	SendMail(toEmail string, subject string, body string) error
}

type smtpMailer struct {
	config MailConfig
}

func NewMailer() Mailer {
	return &smtpMailer{config: LoadMailConfig()}
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	if m.config.SMTPHost == "" {
		return ErrMailNotConfigured
	}

	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(m.config.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		m.config.SMTPHost,
		port,
		m.config.SMTPEmail,
		m.config.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}
