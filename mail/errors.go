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

import "errors"

var (
	// ErrInvalidRequest indicates the contact request failed shape
	// validation. The wrapped message names the offending field.
	ErrInvalidRequest = errors.New("mail: invalid contact request")

	// ErrRateLimited indicates the client IP exhausted its hourly budget.
	ErrRateLimited = errors.New("mail: contact rate limit exceeded")

	// ErrNotConfigured indicates the SMTP settings are incomplete. This is
	// the one failure surfaced to callers without a fallback.
	ErrNotConfigured = errors.New("mail: smtp transport not configured")

	// ErrSenderRequired indicates NewRelay was called without a sender.
	ErrSenderRequired = errors.New("mail: sender is required")
)
