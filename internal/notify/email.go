package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
)

// mailSender is the part of the SendGrid client EmailNotifier uses.
type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// EmailNotifier relays contact submissions to the owner's inbox through SendGrid.
type EmailNotifier struct {
	client mailSender
	from   *mail.Email
	to     *mail.Email
}

// NewEmailNotifier creates an EmailNotifier using the SendGrid v3 API.
func NewEmailNotifier(apiKey, fromEmail, fromName, toEmail string) *EmailNotifier {
	return newEmailNotifier(sendgrid.NewSendClient(apiKey), fromEmail, fromName, toEmail)
}

func newEmailNotifier(client mailSender, fromEmail, fromName, toEmail string) *EmailNotifier {
	return &EmailNotifier{
		client: client,
		from:   mail.NewEmail(fromName, fromEmail),
		to:     mail.NewEmail("", toEmail),
	}
}

// Name identifies the notifier in logs.
func (n *EmailNotifier) Name() string { return "sendgrid" }

// Notify sends one e-mail per submission. Replies go to the visitor.
// A non-2xx response is an error.
func (n *EmailNotifier) Notify(ctx context.Context, msg *model.ContactSubmission) error {
	subject := fmt.Sprintf("New contact form message from %s", msg.Name)
	plain := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n", msg.Name, msg.Email, msg.Message)

	email := mail.NewV3MailInit(n.from, subject, n.to, mail.NewContent("text/plain", plain))
	email.SetReplyTo(mail.NewEmail(msg.Name, msg.Email))

	resp, err := n.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("send contact email: sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
