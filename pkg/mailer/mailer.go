// Package mailer envía emails transaccionales por SMTP (gomail).
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config datos del servidor SMTP.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Message email de texto plano.
type Message struct {
	To      string
	Subject string
	Body    string
}

// SMTPMailer envía mensajes usando un dialer de gomail.
// Puerto 465 usa TLS implícito; el resto STARTTLS si el servidor lo ofrece.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New construye el mailer.
func New(cfg Config) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.Port == 465
	return &SMTPMailer{dialer: d, from: cfg.From}
}

// Send arma y envía el mensaje. Cada envío abre y cierra su propia conexión.
func (m *SMTPMailer) Send(msg Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	if err := m.dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("mailer: enviar a %s: %w", msg.To, err)
	}
	return nil
}
