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

// Package mail relays contact-form inquiries over SMTP. Unlike the search
// path, which always resolves, the relay is allowed to fail visibly: a
// missing SMTP configuration or a failed send surfaces as an error to the
// caller. Bot traffic is absorbed silently via a honeypot field, and each
// client IP gets its own hourly send budget.
package mail
