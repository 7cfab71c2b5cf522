package notify

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
)

// whatsAppPreviewLimit caps the message excerpt included in the alert.
const whatsAppPreviewLimit = 500

// messageCreator is the part of the Twilio REST client WhatsAppNotifier uses.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// WhatsAppNotifier alerts the owner on WhatsApp through Twilio.
type WhatsAppNotifier struct {
	api  messageCreator
	from string
	to   string
}

// NewWhatsAppNotifier creates a WhatsAppNotifier. from and to may omit the "whatsapp:" prefix.
func NewWhatsAppNotifier(accountSID, authToken, from, to string) *WhatsAppNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newWhatsAppNotifier(client.Api, from, to)
}

func newWhatsAppNotifier(api messageCreator, from, to string) *WhatsAppNotifier {
	return &WhatsAppNotifier{api: api, from: whatsAppAddress(from), to: whatsAppAddress(to)}
}

func whatsAppAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}

// Name identifies the notifier in logs.
func (n *WhatsAppNotifier) Name() string { return "twilio-whatsapp" }

// Notify sends a short alert. The Twilio client takes no context, so the call runs
// in its own goroutine and Notify returns ctx.Err() once ctx is done; the abandoned
// request finishes on its own.
func (n *WhatsAppNotifier) Notify(ctx context.Context, msg *model.ContactSubmission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(fmt.Sprintf("New enquiry from %s (%s):\n%s", msg.Name, msg.Email, preview(msg.Message)))

	type result struct {
		resp *twilioApi.ApiV2010Message
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := n.api.CreateMessage(params)
		done <- result{resp: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("send whatsapp alert: %w", ctx.Err())
	case r := <-done:
		if r.err != nil {
			return fmt.Errorf("send whatsapp alert: %w", r.err)
		}
		if r.resp != nil && r.resp.ErrorMessage != nil {
			return fmt.Errorf("send whatsapp alert: %s", *r.resp.ErrorMessage)
		}
		return nil
	}
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= whatsAppPreviewLimit {
		return s
	}
	runes := []rune(s)
	return string(runes[:whatsAppPreviewLimit]) + "…"
}
