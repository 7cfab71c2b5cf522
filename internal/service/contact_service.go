package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
)

// ContactReceivedMessage is returned to the visitor once a submission is accepted.
const ContactReceivedMessage = "Thank you for reaching out! We'll get back to you soon."

// Notifier relays an accepted contact submission to the business owner.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, msg *model.ContactSubmission) error
}

// ContactService validates contact submissions and relays them best-effort.
// Notifiers run in the background so a slow provider never delays the visitor's response.
type ContactService struct {
	notifiers []Notifier
	timeout   time.Duration
	inflight  sync.WaitGroup
}

// NewContactService creates a ContactService. Each notifier call is bounded by timeout;
// a zero timeout means no bound beyond the caller's context.
func NewContactService(timeout time.Duration, notifiers ...Notifier) *ContactService {
	return &ContactService{notifiers: notifiers, timeout: timeout}
}

// Submit accepts a visitor message. Returns ErrInvalidContact if any field is blank
// or the email has no "@". Notifiers are started in the background on a copy of msg,
// detached from ctx, and their failures are logged and never returned.
func (s *ContactService) Submit(ctx context.Context, msg *model.ContactSubmission) (*model.ContactResponse, error) {
	if msg == nil ||
		strings.TrimSpace(msg.Name) == "" ||
		strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Message) == "" ||
		!strings.Contains(msg.Email, "@") {
		return nil, ErrInvalidContact
	}

	if len(s.notifiers) == 0 {
		log.Info().
			Int("message_length", len(msg.Message)).
			Msg("contact submission received, no notifier configured")
		return &model.ContactResponse{Success: true, Message: ContactReceivedMessage}, nil
	}

	// the request context and its buffers are recycled once the response is written
	relayed := &model.ContactSubmission{
		Name:    strings.Clone(msg.Name),
		Email:   strings.Clone(msg.Email),
		Message: strings.Clone(msg.Message),
	}
	for _, n := range s.notifiers {
		s.inflight.Add(1)
		go func(n Notifier) {
			defer s.inflight.Done()
			s.notify(context.Background(), n, relayed)
		}(n)
	}

	return &model.ContactResponse{Success: true, Message: ContactReceivedMessage}, nil
}

// Wait blocks until every notification started by Submit has finished.
func (s *ContactService) Wait() {
	s.inflight.Wait()
}

func (s *ContactService) notify(ctx context.Context, n Notifier, msg *model.ContactSubmission) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := n.Notify(ctx, msg); err != nil {
		log.Warn().
			Err(err).
			Str("notifier", n.Name()).
			Msg("contact notification failed")
		return
	}
	log.Debug().Str("notifier", n.Name()).Msg("contact notification sent")
}
