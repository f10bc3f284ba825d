package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var ErrUnsupportedKind = errors.New("notification kind not supported by sender")

// WebhookSender posts welcome messages to the mailer service, which expects
// {name, email, password} on POST /send-welcome-email.
type WebhookSender struct {
	url    string
	client *http.Client
}

func NewWebhookSender(baseURL string, client *http.Client) *WebhookSender {
	if client == nil {
		client = http.DefaultClient
	}
	url := strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(url, "/send-welcome-email") {
		url += "/send-welcome-email"
	}
	return &WebhookSender{url: url, client: client}
}

type welcomePayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *WebhookSender) Send(ctx context.Context, msg Message) error {
	if msg.Kind != KindWelcome {
		return ErrUnsupportedKind
	}

	body, err := json.Marshal(welcomePayload{Name: msg.Name, Email: msg.To, Password: msg.Password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mailer responded %d", resp.StatusCode)
	}
	return nil
}

// Chain tries each sender in order and stops at the first success. A sender
// returning ErrUnsupportedKind is skipped silently.
type Chain []Sender

func (c Chain) Send(ctx context.Context, msg Message) error {
	var errs []error
	for _, s := range c {
		err := s.Send(ctx, msg)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrUnsupportedKind) {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return ErrUnsupportedKind
	}
	return errors.Join(errs...)
}
