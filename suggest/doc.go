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


// Package suggest orchestrates AI carrier generation behind a guardrail
// sequence and a guaranteed stub fallback.
//
// The Engine never fails and never returns an empty result. Four gates are
// checked in order (feature toggle, filter completeness, rate limit,
// provider credential) and any failing gate short-circuits to the stub.
// Past the gates, the configured strategies run strictly sequentially; the
// first one to yield at least one suggestion wins, and errors or
// valid-but-empty results fall through to the next strategy and finally to
// the stub.
package suggest
