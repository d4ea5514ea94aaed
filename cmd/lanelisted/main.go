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


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/lanelist"
	"github.com/poiesic/lanelist/ai"
	"github.com/poiesic/lanelist/mail"
	"github.com/poiesic/lanelist/ratelimit"
	"github.com/poiesic/lanelist/server"
)

func main() {
	app := &cli.App{
		Name:  "lanelisted",
		Usage: "Freight carrier directory service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the carrier directory API",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "listen",
						Usage:   "HTTP listen address",
						Value:   ":8080",
						EnvVars: []string{"LANELIST_LISTEN"},
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
						EnvVars:  []string{"LANELIST_DB"},
					},
					&cli.StringFlag{
						Name:    "ai-host",
						Usage:   "Chat completion service host URL",
						Value:   "https://api.openai.com/v1",
						EnvVars: []string{"LANELIST_AI_HOST"},
					},
					&cli.StringFlag{
						Name:    "ai-model",
						Usage:   "Chat completion model name",
						Value:   "gpt-4o-mini",
						EnvVars: []string{"LANELIST_AI_MODEL"},
					},
					&cli.StringFlag{
						Name:    "ai-token",
						Usage:   "Chat completion API token",
						EnvVars: []string{"LANELIST_AI_TOKEN"},
					},
					&cli.BoolFlag{
						Name:    "ai-enabled",
						Usage:   "Enable AI-generated carrier suggestions",
						EnvVars: []string{"LANELIST_AI_ENABLED"},
					},
					&cli.DurationFlag{
						Name:  "ai-timeout",
						Usage: "Per-call timeout for the suggestion provider",
						Value: 20 * time.Second,
					},
					&cli.DurationFlag{
						Name:  "rate-window",
						Usage: "Suggestion rate-limit window per client",
						Value: ratelimit.DefaultWindow,
					},
					&cli.IntFlag{
						Name:  "rate-max",
						Usage: "Suggestion calls allowed per client per window",
						Value: ratelimit.DefaultMaxCalls,
					},
					&cli.StringFlag{
						Name:    "smtp-host",
						Usage:   "SMTP host for contact inquiries",
						EnvVars: []string{"LANELIST_SMTP_HOST"},
					},
					&cli.IntFlag{
						Name:    "smtp-port",
						Usage:   "SMTP port",
						Value:   587,
						EnvVars: []string{"LANELIST_SMTP_PORT"},
					},
					&cli.StringFlag{
						Name:    "smtp-username",
						Usage:   "SMTP username",
						EnvVars: []string{"LANELIST_SMTP_USERNAME"},
					},
					&cli.StringFlag{
						Name:    "smtp-password",
						Usage:   "SMTP password",
						EnvVars: []string{"LANELIST_SMTP_PASSWORD"},
					},
					&cli.StringFlag{
						Name:    "mail-from",
						Usage:   "Envelope sender for contact inquiries",
						EnvVars: []string{"LANELIST_MAIL_FROM"},
					},
					&cli.StringFlag{
						Name:    "mail-to",
						Usage:   "Recipient for contact inquiries",
						EnvVars: []string{"LANELIST_MAIL_TO"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithModel(c.String("ai-model")),
		ai.WithToken(c.String("ai-token")),
		ai.WithEnabled(c.Bool("ai-enabled")),
		ai.WithCallTimeout(c.Duration("ai-timeout")),
	)
	if err := aiConfig.Validate(); err != nil {
		return err
	}

	limiter := ratelimit.New(
		ratelimit.WithWindow(c.Duration("rate-window")),
		ratelimit.WithMaxCalls(c.Int("rate-max")),
	)

	dir, err := lanelist.NewDirectory(c.String("db"),
		lanelist.WithAIConfig(aiConfig),
		lanelist.WithRateLimiter(limiter),
	)
	if err != nil {
		return fmt.Errorf("opening carrier store: %w", err)
	}
	defer dir.Close()

	searcher, err := dir.NewSearcher()
	if err != nil {
		return err
	}

	relay, err := buildRelay(c)
	if err != nil {
		return err
	}
	if relay == nil {
		slog.Warn("smtp not configured, contact endpoint disabled")
	}

	srv, err := server.New(searcher, relay)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              c.String("listen"),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// buildRelay returns nil when SMTP settings are absent; the directory then
// runs search-only.
func buildRelay(c *cli.Context) (*mail.Relay, error) {
	smtpConfig := mail.SMTPConfig{
		Host:     c.String("smtp-host"),
		Port:     c.Int("smtp-port"),
		Username: c.String("smtp-username"),
		Password: c.String("smtp-password"),
		From:     c.String("mail-from"),
		To:       c.String("mail-to"),
	}
	if !smtpConfig.Complete() {
		return nil, nil
	}
	return mail.NewRelay(mail.NewSMTPSender(smtpConfig))
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
