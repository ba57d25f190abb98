package mail

import (
	"context"
)

const (
	NewSubscriber templateName = "new_subscriber.gohtml"
)

var templateSubjects = map[templateName]string{
	NewSubscriber: "Welcome to the grbpwr community",
}

type newSubscriberData struct {
	Name         string
	WhatsAppLink string
}

// SendNewSubscriber sends a welcome email to a new subscriber.
func (m *Mailer) SendNewSubscriber(ctx context.Context, to, name string) error {
	return m.send(ctx, to, NewSubscriber, newSubscriberData{
		Name:         name,
		WhatsAppLink: m.c.WhatsAppLink,
	})
}
