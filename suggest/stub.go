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


package suggest

import (
	"fmt"
	"time"

	"github.com/poiesic/lanelist/ai"
	"github.com/poiesic/lanelist/core"
)

// Stub defaults used when the filter leaves a field unspecified.
const (
	stubDefaultType        = core.TransportTruck
	stubDefaultOrigin      = "FR"
	stubDefaultDestination = "ES"
)

// Stub produces a single unverified placeholder suggestion echoing the
// filter. It is the guaranteed-success terminal fallback: it never fails
// and performs no I/O. The identifier is timestamp-derived; everything else
// is deterministic.
func Stub(filter *core.SearchFilter) []core.Suggestion {
	if filter == nil {
		filter = &core.SearchFilter{}
	}

	transportType := filter.Type
	if transportType == "" {
		transportType = stubDefaultType
	}
	origin := filter.Origin
	if origin == "" {
		origin = stubDefaultOrigin
	}
	destination := filter.Destination
	if destination == "" {
		destination = stubDefaultDestination
	}

	confidence := ai.DefaultConfidence
	return []core.Suggestion{
		{
			Carrier: core.Carrier{
				ID:          fmt.Sprintf("stub-%d", time.Now().UnixMilli()),
				Name:        "Placeholder Carrier",
				Verified:    false,
				Types:       []core.TransportType{transportType},
				Lanes:       []core.Lane{{Origin: origin, Destination: destination}},
				Description: "Automatically generated placeholder suggestion.",
				LogoEmoji:   "🚚",
			},
			Source:     core.SourceAI,
			Confidence: &confidence,
		},
	}
}
