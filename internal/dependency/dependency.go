package dependency

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/jekabolt/grbpwr-community/internal/entity"
)

type (
	// Records is the append-only subscriber record book.
	Records interface {
		// AddSubscriber appends a single record to the record file.
		AddSubscriber(ctx context.Context, sub entity.Subscriber) error
		// ListSubscribers reads back every record in the file.
		ListSubscribers(ctx context.Context) ([]entity.Subscriber, error)
	}

	// Mailer sends transactional mail through the configured relay.
	Mailer interface {
		SendNewSubscriber(ctx context.Context, to, name string) error
	}

	// Sender dials the SMTP relay and delivers messages.
	Sender interface {
		DialAndSend(m ...*gomail.Message) error
	}
)
