package mailer

// Service sends the transactional mail the app produces. Sending is always
// best-effort; no request fails because mail did not go out.
type Service interface {
	SendWelcome(toEmail, toName string) error
	SendReservationConfirmation(toEmail, toName, eventName, eventDate string, quantity int) error
}
