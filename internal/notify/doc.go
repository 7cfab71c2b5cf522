// Package notify relays accepted contact submissions to the business owner.
package notify

import "github.com/Stanley42442/OptiSolveLabs/internal/service"

var (
	_ service.Notifier = (*EmailNotifier)(nil)
	_ service.Notifier = (*WhatsAppNotifier)(nil)
)
