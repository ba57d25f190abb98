package mail

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type senderStub struct {
	sent []*gomail.Message
	err  error
}

func (ss *senderStub) DialAndSend(m ...*gomail.Message) error {
	if ss.err != nil {
		return ss.err
	}
	ss.sent = append(ss.sent, m...)
	return nil
}

func testConfig() *Config {
	return &Config{
		SMTPHost:     "smtp.relay.test",
		SMTPPort:     587,
		Username:     "mailer",
		Password:     "secret",
		FromAddress:  "info@grbpwr.com",
		WhatsAppLink: "https://wa.me/grb",
	}
}

func TestNew_IncompleteConfig(t *testing.T) {
	_, err := New(&Config{SMTPHost: "smtp.relay.test"})
	assert.Error(t, err)
}

func TestMailer_SendNewSubscriber(t *testing.T) {
	ss := &senderStub{}
	m, err := newMailer(ss, testConfig())
	require.NoError(t, err)

	err = m.SendNewSubscriber(context.Background(), "new@mail.test", "jeka")
	require.NoError(t, err)
	require.Len(t, ss.sent, 1)

	msg := ss.sent[0]
	assert.Equal(t, []string{"new@mail.test"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Welcome to the grbpwr community"}, msg.GetHeader("Subject"))

	buf := &bytes.Buffer{}
	_, err = msg.WriteTo(buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "jeka")
	assert.Contains(t, buf.String(), "wa.me/grb")
}

func TestMailer_SendError(t *testing.T) {
	ss := &senderStub{err: fmt.Errorf("relay unreachable")}
	m, err := newMailer(ss, testConfig())
	require.NoError(t, err)

	err = m.SendNewSubscriber(context.Background(), "new@mail.test", "jeka")
	assert.Error(t, err)
	assert.Len(t, ss.sent, 0)
}
