package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9095")
	t.Setenv("SMTP_HOST", "smtp.relay.test")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("EMAIL_USERNAME", "mailer")
	t.Setenv("EMAIL_PASSWORD", "secret")
	t.Setenv("FROM_ADDRESS", "info@grbpwr.com")
	t.Setenv("WHATSAPP_LINK", "https://wa.me/grb")
	t.Setenv("RECORDS_PATH", "/var/lib/community/subscribers.csv")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "9095", cfg.HTTP.Port)
	assert.Equal(t, "smtp.relay.test", cfg.Mailer.SMTPHost)
	assert.Equal(t, 2525, cfg.Mailer.SMTPPort)
	assert.Equal(t, "mailer", cfg.Mailer.Username)
	assert.Equal(t, "secret", cfg.Mailer.Password)
	assert.Equal(t, "info@grbpwr.com", cfg.Mailer.FromAddress)
	assert.Equal(t, "https://wa.me/grb", cfg.Mailer.WhatsAppLink)
	assert.Equal(t, "/var/lib/community/subscribers.csv", cfg.Records.Path)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "subscribers.csv", cfg.Records.Path)
}
