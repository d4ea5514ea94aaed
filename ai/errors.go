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


package ai

import "errors"

var (
	// ErrNoChoices indicates the provider returned no completion choices.
	ErrNoChoices = errors.New("no choices returned from model")

	// ErrNoToolCall indicates the provider did not invoke the requested function.
	ErrNoToolCall = errors.New("model did not call the suggestion function")

	// ErrInvalidPayload indicates provider output failed schema validation.
	ErrInvalidPayload = errors.New("provider output failed validation")
)
