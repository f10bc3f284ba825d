package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"hr-portal/internal/notification"

	"github.com/stretchr/testify/assert"
)

type recordingSender struct {
	mu    sync.Mutex
	sent  []notification.Message
	err   error
	block chan struct{}
}

func (r *recordingSender) Send(ctx context.Context, msg notification.Message) error {
	if r.block != nil {
		select {
		case <-r.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return r.err
}

func (r *recordingSender) messages() []notification.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notification.Message(nil), r.sent...)
}

func TestDispatcher(t *testing.T) {
	t.Run("delivers queued messages and drains on stop", func(t *testing.T) {
		sender := &recordingSender{}
		d := notification.NewDispatcher(sender, 4, time.Second)
		d.Start(context.Background())

		assert.True(t, d.Dispatch(notification.WelcomeMessage("Asha", "asha@example.com", "secret1")))
		assert.True(t, d.Dispatch(notification.WelcomeMessage("Ravi", "ravi@example.com", "secret2")))
		d.Stop()
		d.Wait()

		got := sender.messages()
		assert.Len(t, got, 2)
		assert.Equal(t, "asha@example.com", got[0].To)
		assert.Contains(t, got[0].Body, "Password: secret1")
	})

	t.Run("full queue drops instead of blocking", func(t *testing.T) {
		sender := &recordingSender{block: make(chan struct{})}
		d := notification.NewDispatcher(sender, 1, time.Second)
		d.Start(context.Background())

		// the worker takes the first message and blocks in Send
		assert.True(t, d.Dispatch(notification.Message{To: "a@example.com"}))
		assert.Eventually(t, func() bool {
			return d.Dispatch(notification.Message{To: "b@example.com"})
		}, time.Second, 5*time.Millisecond)

		done := make(chan bool, 1)
		go func() { done <- d.Dispatch(notification.Message{To: "c@example.com"}) }()
		select {
		case queued := <-done:
			assert.False(t, queued)
		case <-time.After(time.Second):
			t.Fatal("Dispatch blocked on a full queue")
		}

		close(sender.block)
		d.Stop()
		d.Wait()
		assert.Len(t, sender.messages(), 2)
	})

	t.Run("send failures are swallowed", func(t *testing.T) {
		sender := &recordingSender{err: errors.New("smtp down")}
		d := notification.NewDispatcher(sender, 1, time.Second)
		d.Start(context.Background())

		assert.True(t, d.Dispatch(notification.Message{To: "a@example.com"}))
		d.Stop()
		d.Wait()
		assert.Len(t, sender.messages(), 1)
	})

	t.Run("dispatch after stop is rejected", func(t *testing.T) {
		d := notification.NewDispatcher(&recordingSender{}, 1, time.Second)
		d.Start(context.Background())
		d.Stop()
		d.Wait()

		assert.False(t, d.Dispatch(notification.Message{To: "a@example.com"}))
	})

	t.Run("context cancel stops worker", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		d := notification.NewDispatcher(&recordingSender{}, 1, time.Second)
		d.Start(ctx)
		cancel()
		d.Wait()

		assert.False(t, d.Dispatch(notification.Message{To: "a@example.com"}))
	})
}

func TestWebhookSender(t *testing.T) {
	t.Run("posts the welcome payload", func(t *testing.T) {
		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/send-welcome-email", r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		s := notification.NewWebhookSender(srv.URL, srv.Client())
		err := s.Send(context.Background(), notification.WelcomeMessage("Asha", "asha@example.com", "secret1"))

		assert.NoError(t, err)
		assert.Equal(t, map[string]string{"name": "Asha", "email": "asha@example.com", "password": "secret1"}, got)
	})

	t.Run("non 2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		s := notification.NewWebhookSender(srv.URL+"/send-welcome-email", srv.Client())
		err := s.Send(context.Background(), notification.WelcomeMessage("Asha", "asha@example.com", "x"))
		assert.Error(t, err)
	})

	t.Run("other kinds are unsupported", func(t *testing.T) {
		s := notification.NewWebhookSender("http://127.0.0.1:1", nil)
		err := s.Send(context.Background(), notification.LeaveDecisionMessage("Asha", "asha@example.com", "Approved", "2025-06-10", "2025-06-12"))
		assert.ErrorIs(t, err, notification.ErrUnsupportedKind)
	})
}

func TestChain(t *testing.T) {
	first := &recordingSender{err: errors.New("down")}
	second := &recordingSender{}
	chain := notification.Chain{first, second}

	err := chain.Send(context.Background(), notification.Message{To: "a@example.com"})
	assert.NoError(t, err)
	assert.Len(t, second.messages(), 1)

	failing := notification.Chain{&recordingSender{err: errors.New("down")}}
	assert.Error(t, failing.Send(context.Background(), notification.Message{}))
}
