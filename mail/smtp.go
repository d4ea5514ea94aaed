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
	"strings"

	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig holds the transport settings for outgoing inquiry mail.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string

	// From is the envelope sender; To receives the inquiries.
	From string
	To   string
}

// Complete reports whether the transport can actually deliver. An
// incomplete config is detected at send time, not at startup, so the rest
// of the application keeps running without SMTP.
func (c *SMTPConfig) Complete() bool {
	return c.Host != "" && c.From != "" && c.To != ""
}

// SMTPSender delivers contact requests via SMTP using go-mail.
type SMTPSender struct {
	config SMTPConfig
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates a sender for the given transport settings. The
// settings are not validated here; see SMTPConfig.Complete.
func NewSMTPSender(config SMTPConfig) *SMTPSender {
	if config.Port == 0 {
		config.Port = 587
	}
	return &SMTPSender{config: config}
}

// Send formats the inquiry and relays it in a single SMTP session.
func (s *SMTPSender) Send(ctx context.Context, req *ContactRequest) error {
	if !s.config.Complete() {
		return ErrNotConfigured
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.config.From); err != nil {
		return fmt.Errorf("mail: invalid sender address: %w", err)
	}
	if err := msg.To(s.config.To); err != nil {
		return fmt.Errorf("mail: invalid recipient address: %w", err)
	}
	if err := msg.ReplyTo(req.Email); err != nil {
		return fmt.Errorf("mail: invalid reply-to address: %w", err)
	}
	msg.Subject("Carrier inquiry: " + req.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, formatInquiry(req))

	opts := []gomail.Option{
		gomail.WithPort(s.config.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if s.config.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.config.Username),
			gomail.WithPassword(s.config.Password),
		)
	}

	client, err := gomail.NewClient(s.config.Host, opts...)
	if err != nil {
		return fmt.Errorf("mail: smtp client setup failed: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: smtp delivery failed: %w", err)
	}
	return nil
}

func formatInquiry(req *ContactRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	if req.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", req.Company)
	}
	if req.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", req.Phone)
	}
	b.WriteString("\n")
	b.WriteString(req.Message)
	b.WriteString("\n")
	return b.String()
}
