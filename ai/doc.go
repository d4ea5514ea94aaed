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


// Package ai defines the carrier-suggestion abstractions shared by the
// generation strategies and their consumers.
//
// The package owns three things:
//
//   - Config: connection settings for an OpenAI-compatible provider.
//   - The canonical suggestion schema: a single definition from which the
//     provider-facing JSON schema, the prompt fragment, and the output
//     validator are all derived, so what is requested and what is accepted
//     cannot drift apart.
//   - Strategy: the uniform contract a generation strategy implements. The
//     fallback chain is an ordered slice of strategies, making the chain
//     data rather than control flow.
//
// Concrete strategies live in ai/openai; test doubles live in ai/mock.
package ai
