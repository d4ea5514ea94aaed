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


package ratelimit

import (
	"sync"
	"time"
)

const (
	// DefaultWindow is the default counting window length.
	DefaultWindow = 60 * time.Second

	// DefaultMaxCalls is the default number of calls allowed per key per window.
	DefaultMaxCalls = 20
)

// bucket tracks calls for a single key within the current window.
type bucket struct {
	count       int
	windowStart time.Time
}

// Limiter is a per-key fixed-window call limiter. It is an explicitly owned
// instance rather than process-global state, so tests and multi-tenant
// callers each construct their own. Safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	window   time.Duration
	maxCalls int
	now      func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithWindow sets the counting window length.
// Default is DefaultWindow.
func WithWindow(window time.Duration) Option {
	return func(l *Limiter) {
		if window > 0 {
			l.window = window
		}
	}
}

// WithMaxCalls sets the number of calls allowed per key per window.
// Default is DefaultMaxCalls.
func WithMaxCalls(max int) Option {
	return func(l *Limiter) {
		if max > 0 {
			l.maxCalls = max
		}
	}
}

// WithNow sets the clock function. Tests use this to step time explicitly.
func WithNow(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a Limiter with the default window and limit, then applies options.
func New(opts ...Option) *Limiter {
	l := &Limiter{
		buckets:  make(map[string]*bucket),
		window:   DefaultWindow,
		maxCalls: DefaultMaxCalls,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records a call for key and reports whether it is within the limit.
// A denied call still counts toward the window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{windowStart: now}
		l.buckets[key] = b
	}

	if now.Sub(b.windowStart) > l.window {
		b.count = 0
		b.windowStart = now
	}

	b.count++
	return b.count <= l.maxCalls
}

// Keys returns the number of keys currently tracked.
func (l *Limiter) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
