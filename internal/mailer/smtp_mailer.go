package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPMailer struct {
	Host   string
	Port   int
	From   string
	User   string
	Pass   string
	UseTLS bool
}

func NewSMTPMailer(host string, port int, from, user, pass string, useTLS bool) *SMTPMailer {
	return &SMTPMailer{
		Host:   strings.TrimSpace(host),
		Port:   port,
		From:   strings.TrimSpace(from),
		User:   strings.TrimSpace(user),
		Pass:   strings.TrimSpace(pass),
		UseTLS: useTLS,
	}
}

func (s *SMTPMailer) SendWelcome(toEmail, toName string) error {
	subject := "Bienvenido a Planventura"
	text := fmt.Sprintf("Hola %s, tu cuenta de Planventura está lista.", toName)
	html := fmt.Sprintf(`
		<h2>¡Bienvenido a Planventura!</h2>
		<p>Hola %s,</p>
		<p>Tu cuenta está lista. Ya puedes explorar eventos y reservar tu asistencia.</p>
	`, toName)

	return s.sendEmail(toEmail, subject, text, html)
}

func (s *SMTPMailer) SendReservationConfirmation(toEmail, toName, eventName, eventDate string, quantity int) error {
	subject := fmt.Sprintf("Reserva confirmada: %s", eventName)
	text := fmt.Sprintf("Tu reserva para %s (%s) está confirmada. Entradas: %d", eventName, eventDate, quantity)
	html := fmt.Sprintf(`
		<h2>Reserva confirmada</h2>
		<p>Hola %s,</p>
		<p>Tu reserva para <strong>%s</strong> (%s) está confirmada.</p>
		<p>Entradas: %d</p>
	`, toName, eventName, eventDate, quantity)

	return s.sendEmail(toEmail, subject, text, html)
}

func (s *SMTPMailer) sendEmail(toEmail, subject, text, html string) error {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return fmt.Errorf("empty recipient email")
	}

	var buf bytes.Buffer
	boundary := "mixed-boundary"

	fmt.Fprintf(&buf, "From: %s\r\n", s.From)
	fmt.Fprintf(&buf, "To: %s\r\n", toEmail)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", text)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/html; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", html)

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	// Development SMTP (no auth, no TLS), e.g. Mailpit
	if !s.UseTLS && s.User == "" {
		return smtp.SendMail(addr, nil, s.From, []string{toEmail}, buf.Bytes())
	}

	var auth smtp.Auth
	if s.User != "" {
		auth = smtp.PlainAuth("", s.User, s.Pass, s.Host)
	}

	// Plain SMTP first (with STARTTLS when the server offers it)
	if err := smtp.SendMail(addr, auth, s.From, []string{toEmail}, buf.Bytes()); err == nil {
		return nil
	}

	if !s.UseTLS {
		return fmt.Errorf("smtp send failed and TLS fallback disabled")
	}

	// Implicit TLS fallback (port 465)
	tlsCfg := &tls.Config{ServerName: s.Host}
	conn, err := tls.Dial("tcp", addr, tlsCfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if s.User != "" {
		if err := c.Auth(auth); err != nil {
			return err
		}
	}

	if err := c.Mail(s.From); err != nil {
		return err
	}
	if err := c.Rcpt(toEmail); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	return w.Close()
}
