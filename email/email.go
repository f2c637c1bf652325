package email

import (
	"fmt"
	"net/smtp"
	"os"
)

// Sender is the outbound mail capability the contact module depends on.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

type EmailService struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		user:     os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
}

// Send delivers one HTML email over SMTP. There is no retry: a transport
// failure is returned to the caller as-is.
func (e *EmailService) Send(to, subject, htmlBody string) error {
	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
		"\r\n"+
		"%s\r\n", e.from, to, subject, htmlBody)

	auth := smtp.PlainAuth("", e.user, e.password, e.host)
	addr := fmt.Sprintf("%s:%s", e.host, e.port)

	if err := smtp.SendMail(addr, auth, e.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}

// ContactNotification formats the operator-facing email for a contact
// form submission. Returns subject and HTML body.
func ContactNotification(name, fromEmail, subject, message string) (string, string) {
	body := fmt.Sprintf(`
        <h3>New Contact Form Submission</h3>
        <p><b>Name:</b> %s</p>
        <p><b>Email:</b> %s</p>
        <p><b>Subject:</b> %s</p>
        <p><b>Message:</b> %s</p>
    `, name, fromEmail, subject, message)

	return fmt.Sprintf("New Contact Message: %s", subject), body
}

// ContactConfirmation formats the confirmation email sent back to the
// submitter. Returns subject and HTML body.
func ContactConfirmation(name string) (string, string) {
	body := fmt.Sprintf(`
        <h3>Thank you for contacting us!</h3>
        <p>Dear %s,</p>
        <p>We have received your message. Our team will get back to you soon.</p>
        <br><p>Regards,<br>The Blogdesk Team</p>
    `, name)

	return "We Received Your Message", body
}
