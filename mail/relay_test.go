package mail

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/lanelist/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderSender struct {
	mu   sync.Mutex
	sent []*ContactRequest
	err  error
}

func (r *recorderSender) Send(ctx context.Context, req *ContactRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, req)
	return nil
}

func (r *recorderSender) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func validRequest() *ContactRequest {
	return &ContactRequest{
		Name:    "Marie Dupont",
		Email:   "marie@example.com",
		Subject: "Reefer capacity FR to ES",
		Message: "Looking for weekly reefer capacity from Lyon to Barcelona.",
		Consent: true,
	}
}

func TestNewRelay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		relay, err := NewRelay(&recorderSender{})
		require.NoError(t, err)
		assert.NotNil(t, relay)
	})

	t.Run("nil sender", func(t *testing.T) {
		_, err := NewRelay(nil)
		assert.Equal(t, ErrSenderRequired, err)
	})
}

func TestContactRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ContactRequest)
	}{
		{"missing name", func(r *ContactRequest) { r.Name = "" }},
		{"whitespace name", func(r *ContactRequest) { r.Name = "   " }},
		{"missing email", func(r *ContactRequest) { r.Email = "" }},
		{"malformed email", func(r *ContactRequest) { r.Email = "not-an-address" }},
		{"missing subject", func(r *ContactRequest) { r.Subject = "" }},
		{"missing message", func(r *ContactRequest) { r.Message = "" }},
		{"no consent", func(r *ContactRequest) { r.Consent = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			err := req.Validate()
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, validRequest().Validate())
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		req := validRequest()
		req.Company = ""
		req.Phone = ""
		assert.NoError(t, req.Validate())
	})
}

func TestRelay_DeliversValidRequest(t *testing.T) {
	sender := &recorderSender{}
	relay, err := NewRelay(sender)
	require.NoError(t, err)

	err = relay.Relay(context.Background(), validRequest(), "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, 1, sender.count())
}

func TestRelay_HoneypotSilentAccept(t *testing.T) {
	sender := &recorderSender{}
	relay, err := NewRelay(sender)
	require.NoError(t, err)

	req := validRequest()
	req.Website = "https://spam.example"

	err = relay.Relay(context.Background(), req, "203.0.113.7")
	assert.NoError(t, err, "bots must not be able to detect the honeypot")
	assert.Equal(t, 0, sender.count(), "honeypot submissions must never be sent")
}

func TestRelay_RejectsInvalidWithoutSending(t *testing.T) {
	sender := &recorderSender{}
	relay, err := NewRelay(sender)
	require.NoError(t, err)

	req := validRequest()
	req.Consent = false

	err = relay.Relay(context.Background(), req, "203.0.113.7")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, 0, sender.count())
}

func TestRelay_PerIPHourlyLimit(t *testing.T) {
	sender := &recorderSender{}
	relay, err := NewRelay(sender)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < ContactMaxCalls; i++ {
		require.NoError(t, relay.Relay(ctx, validRequest(), "203.0.113.7"))
	}

	err = relay.Relay(ctx, validRequest(), "203.0.113.7")
	assert.Equal(t, ErrRateLimited, err)
	assert.Equal(t, ContactMaxCalls, sender.count())

	// Another IP has its own budget.
	require.NoError(t, relay.Relay(ctx, validRequest(), "198.51.100.4"))
	assert.Equal(t, ContactMaxCalls+1, sender.count())
}

func TestRelay_LimitResetsAfterWindow(t *testing.T) {
	now := time.Now()
	limiter := ratelimit.New(
		ratelimit.WithWindow(ContactWindow),
		ratelimit.WithMaxCalls(1),
		ratelimit.WithNow(func() time.Time { return now }),
	)
	sender := &recorderSender{}
	relay, err := NewRelay(sender, WithLimiter(limiter))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, relay.Relay(ctx, validRequest(), "203.0.113.7"))
	assert.Equal(t, ErrRateLimited, relay.Relay(ctx, validRequest(), "203.0.113.7"))

	now = now.Add(ContactWindow + time.Second)
	assert.NoError(t, relay.Relay(ctx, validRequest(), "203.0.113.7"))
}

func TestRelay_SenderErrorSurfaces(t *testing.T) {
	sendErr := errors.New("connection refused")
	relay, err := NewRelay(&recorderSender{err: sendErr})
	require.NoError(t, err)

	err = relay.Relay(context.Background(), validRequest(), "203.0.113.7")
	assert.ErrorIs(t, err, sendErr)
}

func TestSMTPSender_RequiresConfiguration(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{})
	err := sender.Send(context.Background(), validRequest())
	assert.Equal(t, ErrNotConfigured, err)
}

func TestSMTPConfigComplete(t *testing.T) {
	assert.False(t, (&SMTPConfig{}).Complete())
	assert.False(t, (&SMTPConfig{Host: "smtp.example.com"}).Complete())
	assert.True(t, (&SMTPConfig{
		Host: "smtp.example.com",
		From: "noreply@example.com",
		To:   "inquiries@example.com",
	}).Complete())
}
