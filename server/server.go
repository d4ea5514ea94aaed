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

package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/poiesic/lanelist/core"
	"github.com/poiesic/lanelist/mail"
	"github.com/poiesic/lanelist/search"
)

// Server routes directory searches and contact inquiries.
type Server struct {
	searcher *search.Searcher
	relay    *mail.Relay
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Server. The relay may be nil when SMTP is not configured;
// the contact endpoint then answers 503.
func New(searcher *search.Searcher, relay *mail.Relay, opts ...Option) (*Server, error) {
	if searcher == nil {
		return nil, errors.New("server: searcher is required")
	}

	s := &Server{
		searcher: searcher,
		relay:    relay,
		logger:   slog.Default().With("component", "server"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Router builds the HTTP routing table.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	api.POST("/search", s.handleSearch)
	api.POST("/contact", s.handleContact)

	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// searchRequest is the JSON body of POST /api/search. Every field is
// optional; absent fields impose no constraint.
type searchRequest struct {
	Type         string `json:"type"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	VerifiedOnly bool   `json:"verifiedOnly"`
}

func (s *Server) handleSearch(c *gin.Context) {
	start := time.Now()

	var req searchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}
	}

	filter, err := buildFilter(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := s.searcher.Search(c.Request.Context(), filter, clientKey(c))

	elapsed := time.Since(start).Milliseconds()
	c.Header("X-Response-Time-Ms", strconv.FormatInt(elapsed, 10))
	c.JSON(http.StatusOK, result)
}

func buildFilter(req *searchRequest) (*core.SearchFilter, error) {
	filter := &core.SearchFilter{
		Origin:       strings.ToUpper(strings.TrimSpace(req.Origin)),
		Destination:  strings.ToUpper(strings.TrimSpace(req.Destination)),
		VerifiedOnly: req.VerifiedOnly,
	}

	if req.Type != "" {
		t := core.TransportType(strings.ToLower(strings.TrimSpace(req.Type)))
		if err := core.ValidateTransportType(t); err != nil {
			return nil, errors.New("unknown transport type")
		}
		filter.Type = t
	}
	if filter.Origin != "" && !core.IsCountryCode(filter.Origin) {
		return nil, errors.New("origin must be a two-letter country code")
	}
	if filter.Destination != "" && !core.IsCountryCode(filter.Destination) {
		return nil, errors.New("destination must be a two-letter country code")
	}
	return filter, nil
}

func (s *Server) handleContact(c *gin.Context) {
	if s.relay == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "contact form is not available"})
		return
	}

	var req mail.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	err := s.relay.Relay(c.Request.Context(), &req, clientKey(c))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "sent"})
	case errors.Is(err, mail.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, mail.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many inquiries, try again later"})
	default:
		// Raw transport errors stay in the logs.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send your inquiry"})
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// clientKey derives the rate-limit key for a request. The first hop of
// X-Forwarded-For wins when present. The header is caller-supplied and
// spoofable; this mirrors the deployed trust model, where the reverse
// proxy is expected to set it.
func clientKey(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	return c.ClientIP()
}
