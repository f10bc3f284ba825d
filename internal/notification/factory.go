package notification

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Settings struct {
	SMTP      SMTPConfig
	MailerURL string
	Timeout   time.Duration
}

// NewSender picks the transports that are configured: SMTP first, then the
// mailer webhook. With neither it only logs.
func NewSender(s Settings, logger *zap.Logger) Sender {
	var chain Chain
	if s.SMTP.Host != "" && s.SMTP.From != "" {
		chain = append(chain, NewSMTPSender(s.SMTP))
	}
	if s.MailerURL != "" {
		chain = append(chain, NewWebhookSender(s.MailerURL, &http.Client{Timeout: s.Timeout}))
	}
	if len(chain) == 0 {
		return NewLogSender(logger)
	}
	return chain
}
