package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/tavolaworks/trattoria-manager/internal/dependency"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
	gerr "github.com/tavolaworks/trattoria-manager/internal/errors"
)

type SenderConfig struct {
	GatewayBaseURL string `mapstructure:"gateway_base_url"`
	GatewayAPIKey  string `mapstructure:"gateway_api_key"`
	FromPhone      string `mapstructure:"from_phone"`

	SendGridAPIKey string `mapstructure:"sendgrid_api_key"`
	FromEmail      string `mapstructure:"from_email"`
	FromName       string `mapstructure:"from_email_name"`
}

// Sender delivers texts through the messaging gateway and emails through
// SendGrid.
type Sender struct {
	cli  *resty.Client
	mail *sendgrid.Client
	from *mail.Email
	c    *SenderConfig
}

// NewSender creates a new gateway-backed sender.
func NewSender(c *SenderConfig) (dependency.MessageSender, error) {
	if c.GatewayBaseURL == "" || c.GatewayAPIKey == "" || c.FromPhone == "" {
		return nil, fmt.Errorf("incomplete gateway config: %+v", c)
	}
	if c.SendGridAPIKey == "" || c.FromEmail == "" || c.FromName == "" {
		return nil, fmt.Errorf("incomplete email config: %+v", c)
	}

	cli := resty.New()
	cli.SetBaseURL(c.GatewayBaseURL)
	cli.SetAuthToken(c.GatewayAPIKey)
	cli.SetTimeout(10 * time.Second)

	return &Sender{
		cli:  cli,
		mail: sendgrid.NewSendClient(c.SendGridAPIKey),
		from: mail.NewEmail(c.FromName, c.FromEmail),
		c:    c,
	}, nil
}

type textPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// SendText delivers a single SMS or WhatsApp message.
func (s *Sender) SendText(ctx context.Context, kind entity.NotificationKind, recipient, body string) error {
	var endpoint string
	switch kind {
	case entity.NotificationSMS:
		endpoint = "/v1/sms"
	case entity.NotificationWhatsApp:
		endpoint = "/v1/whatsapp"
	default:
		return fmt.Errorf("kind %s is not a text channel", kind)
	}

	resp, err := s.cli.R().
		SetContext(ctx).
		SetBody(textPayload{
			From: s.c.FromPhone,
			To:   recipient,
			Body: body,
		}).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return gerr.ErrNotifyAPILimitReached
	}
	if resp.IsError() {
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// SendEmail delivers a single plain-text email.
func (s *Sender) SendEmail(ctx context.Context, recipient, subject, body string) error {
	msg := mail.NewSingleEmail(s.from, subject, mail.NewEmail("", recipient), body, body)

	resp, err := s.mail.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return gerr.ErrNotifyAPILimitReached
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
