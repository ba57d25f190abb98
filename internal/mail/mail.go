package mail

import (
	"context"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/jekabolt/grbpwr-community/internal/dependency"
	"github.com/jekabolt/grbpwr-community/internal/metrics"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type templateName string

// Config holds the SMTP relay settings.
type Config struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	WhatsAppLink string `mapstructure:"whatsapp_link"`
}

type Mailer struct {
	cli       dependency.Sender
	c         *Config
	templates map[templateName]*template.Template
}

// New builds a Mailer that delivers through the SMTP relay from the config.
func New(c *Config) (dependency.Mailer, error) {
	if c.SMTPHost == "" || c.SMTPPort == 0 || c.FromAddress == "" {
		return nil, fmt.Errorf("incomplete config: %+v", c)
	}

	d := gomail.NewDialer(c.SMTPHost, c.SMTPPort, c.Username, c.Password)

	return newMailer(d, c)
}

func newMailer(cli dependency.Sender, c *Config) (*Mailer, error) {
	if c.FromName == "" {
		c.FromName = "grbpwr community"
	}

	m := &Mailer{
		cli:       cli,
		c:         c,
		templates: make(map[templateName]*template.Template),
	}

	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return m, nil
}

func (m *Mailer) parseTemplates() error {
	templateDir := "templates"

	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		templatePath := filepath.Join(templateDir, entry.Name())

		tmpl, err := template.ParseFS(templatesFS, templatePath)
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}

		m.templates[templateName(entry.Name())] = tmpl
	}

	return nil
}

func (m *Mailer) buildMessage(to string, tn templateName, data interface{}) (*gomail.Message, error) {
	tmpl, ok := m.templates[tn]
	if !ok {
		return nil, fmt.Errorf("template not found: %v", tn)
	}

	subject, ok := templateSubjects[tn]
	if !ok {
		return nil, fmt.Errorf("subject not found for template: %v", tn)
	}

	body := &strings.Builder{}
	if err := tmpl.Execute(body, data); err != nil {
		return nil, fmt.Errorf("error executing template: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.c.FromAddress, m.c.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	return msg, nil
}

// send performs a single delivery attempt. There is no retry and no outbox:
// a failed send is the caller's problem to report.
func (m *Mailer) send(ctx context.Context, to string, tn templateName, data interface{}) error {
	msg, err := m.buildMessage(to, tn, data)
	if err != nil {
		return err
	}

	if err := m.cli.DialAndSend(msg); err != nil {
		metrics.MailSendFailure.WithLabelValues(m.c.SMTPHost).Inc()
		return fmt.Errorf("error sending email: %w", err)
	}

	metrics.MailSendSuccess.WithLabelValues(m.c.SMTPHost).Inc()
	return nil
}
