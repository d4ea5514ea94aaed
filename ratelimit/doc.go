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


// Package ratelimit provides a per-key fixed-window call limiter.
//
// The limiter counts calls per key within a fixed window; the counter resets
// when the window elapses. Because windows are fixed rather than sliding, a
// caller can burst up to twice the limit across a window boundary. That
// imprecision is accepted: the limiter guards expensive generation calls,
// not a billing meter.
//
// Buckets live for the lifetime of the limiter. Stale keys are never
// evicted, so long-running processes with high key cardinality grow the map
// without bound.
package ratelimit
