package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendWelcome(toEmail, toName string) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := "Bienvenido a Planventura"
	html := fmt.Sprintf(`
		<h2>¡Bienvenido a Planventura!</h2>
		<p>Hola %s,</p>
		<p>Tu cuenta está lista. Ya puedes explorar eventos y reservar tu asistencia.</p>
	`, toName)
	text := fmt.Sprintf("Hola %s, tu cuenta de Planventura está lista.", toName)

	return m.sendEmail(toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) SendReservationConfirmation(toEmail, toName, eventName, eventDate string, quantity int) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := fmt.Sprintf("Reserva confirmada: %s", eventName)
	html := fmt.Sprintf(`
		<h2>Reserva confirmada</h2>
		<p>Hola %s,</p>
		<p>Tu reserva para <strong>%s</strong> (%s) está confirmada.</p>
		<p>Entradas: %d</p>
	`, toName, eventName, eventDate, quantity)
	text := fmt.Sprintf("Tu reserva para %s (%s) está confirmada. Entradas: %d", eventName, eventDate, quantity)

	return m.sendEmail(toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) sendEmail(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)

	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
