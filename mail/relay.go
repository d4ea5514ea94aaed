// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mail

import (
	"context"
	"fmt"
	"log/slog"
	netmail "net/mail"
	"strings"
	"time"

	"github.com/poiesic/lanelist/ratelimit"
)

// Per-IP contact budget. Independent of the suggestion engine's limiter.
const (
	ContactWindow   = time.Hour
	ContactMaxCalls = 5
)

// ContactRequest is an inquiry submitted through the contact form.
// Website is a honeypot: humans never see the field, so a non-empty value
// marks the submission as bot traffic.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Consent bool   `json:"consent"`
	Website string `json:"website,omitempty"`
}

// Validate checks the required fields and the email shape.
func (r *ContactRequest) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"subject", r.Subject},
		{"message", r.Message},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidRequest, f.field)
		}
	}
	if _, err := netmail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: email is malformed", ErrInvalidRequest)
	}
	if !r.Consent {
		return fmt.Errorf("%w: consent is required", ErrInvalidRequest)
	}
	return nil
}

// Sender delivers a validated contact request. SMTPSender is the production
// implementation; tests inject a recorder.
type Sender interface {
	Send(ctx context.Context, req *ContactRequest) error
}

// Relay validates, rate-limits, and forwards contact requests to a Sender.
type Relay struct {
	sender  Sender
	limiter *ratelimit.Limiter
	logger  *slog.Logger
}

// RelayOption configures a Relay.
type RelayOption func(*Relay)

// WithLimiter overrides the per-IP contact limiter.
func WithLimiter(limiter *ratelimit.Limiter) RelayOption {
	return func(r *Relay) {
		if limiter != nil {
			r.limiter = limiter
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) RelayOption {
	return func(r *Relay) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRelay creates a Relay around the given sender.
func NewRelay(sender Sender, opts ...RelayOption) (*Relay, error) {
	if sender == nil {
		return nil, ErrSenderRequired
	}

	r := &Relay{
		sender: sender,
		limiter: ratelimit.New(
			ratelimit.WithWindow(ContactWindow),
			ratelimit.WithMaxCalls(ContactMaxCalls),
		),
		logger: slog.Default().With("component", "mail"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Relay processes a contact request for the given client key. Honeypot hits
// return nil without sending, so bots cannot distinguish themselves from
// accepted submissions. Validation and rate-limit failures return typed
// errors; send failures pass through from the Sender.
func (r *Relay) Relay(ctx context.Context, req *ContactRequest, rateKey string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.Website != "" {
		r.logger.Info("honeypot triggered, dropping submission", "client", rateKey)
		return nil
	}

	if !r.limiter.Allow(rateKey) {
		r.logger.Warn("contact rate limit exceeded", "client", rateKey)
		return ErrRateLimited
	}

	if err := r.sender.Send(ctx, req); err != nil {
		r.logger.Error("contact relay failed", "error", err)
		return err
	}

	r.logger.Info("contact inquiry relayed", "subject", req.Subject)
	return nil
}
