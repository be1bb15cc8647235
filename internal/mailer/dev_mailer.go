package mailer

import (
	"github.com/planventura/eventos-api/internal/logger"
)

// DevMailer prints mail to the logs instead of sending it.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendWelcome(toEmail, toName string) error {
	logger.Info("[DEV MAIL] welcome email",
		"to", toEmail,
		"name", toName,
	)
	return nil
}

func (d *DevMailer) SendReservationConfirmation(toEmail, toName, eventName, eventDate string, quantity int) error {
	logger.Info("[DEV MAIL] reservation confirmation",
		"to", toEmail,
		"name", toName,
		"event", eventName,
		"date", eventDate,
		"quantity", quantity,
	)
	return nil
}
