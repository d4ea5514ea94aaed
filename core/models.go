package core

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent generates a deterministic carrier ID from text content using
// BLAKE2b hashing. Seed data uses this so that reseeding produces stable IDs.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// TransportType classifies the equipment a carrier operates.
type TransportType string

const (
	TransportTruck     TransportType = "truck"
	TransportReefer    TransportType = "reefer"
	TransportContainer TransportType = "container"
	TransportFlatbed   TransportType = "flatbed"
	TransportTanker    TransportType = "tanker"
)

// TransportTypes lists every valid transport type, in display order.
var TransportTypes = []TransportType{
	TransportTruck,
	TransportReefer,
	TransportContainer,
	TransportFlatbed,
	TransportTanker,
}

// Lane is a directed origin->destination country pair a carrier services.
// Origin and Destination are two-letter country codes. Lanes are unordered
// within a carrier but insertion order is preserved for display.
type Lane struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// Contact holds optional contact details for a carrier.
type Contact struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// Carrier is a freight carrier listed in the directory.
// Carriers are created by seeding; the search path never mutates them.
type Carrier struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Verified    bool            `json:"verified"`
	Rating      *float64        `json:"rating,omitempty"`
	Types       []TransportType `json:"types"`
	Lanes       []Lane          `json:"lanes"`
	Description string          `json:"description,omitempty"`
	Contact     *Contact        `json:"contact,omitempty"`
	LogoEmoji   string          `json:"logoEmoji,omitempty"`
}

// Provenance values for Suggestion.Source.
const (
	SourceDB = "db"
	SourceAI = "ai"
)

// Suggestion is a response-only view of a carrier with provenance attached.
// AI-sourced suggestions are never verified and carry a fixed confidence
// score signaling provenance, not a measured probability. Never persisted.
type Suggestion struct {
	Carrier
	Source     string   `json:"source"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// SearchFilter narrows a carrier search. All fields are independently
// optional; an empty filter matches everything. Present fields combine
// conjunctively.
type SearchFilter struct {
	Type         TransportType `json:"type,omitempty"`
	Origin       string        `json:"origin,omitempty"`
	Destination  string        `json:"destination,omitempty"`
	VerifiedOnly bool          `json:"verifiedOnly,omitempty"`
}

// PopulatedFields counts how many of type, origin, and destination are set.
// VerifiedOnly does not count: it constrains the database query but carries
// no signal for generation.
func (f *SearchFilter) PopulatedFields() int {
	n := 0
	if f.Type != "" {
		n++
	}
	if f.Origin != "" {
		n++
	}
	if f.Destination != "" {
		n++
	}
	return n
}

// Matches reports whether a carrier satisfies every populated filter field.
// A lane constraint is satisfied when a single lane matches both the origin
// and destination that are present.
func (f *SearchFilter) Matches(c *Carrier) bool {
	if f.VerifiedOnly && !c.Verified {
		return false
	}
	if f.Type != "" {
		found := false
		for _, t := range c.Types {
			if t == f.Type {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Origin != "" || f.Destination != "" {
		found := false
		for _, lane := range c.Lanes {
			if f.Origin != "" && lane.Origin != f.Origin {
				continue
			}
			if f.Destination != "" && lane.Destination != f.Destination {
				continue
			}
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}

// SearchResult is the outcome of a directory search. Either Carriers holds
// database matches (UsedAI false) or Suggestions holds AI-generated or stub
// entries (UsedAI true) with a human-readable Notice explaining why.
type SearchResult struct {
	Carriers    []Suggestion `json:"carriers"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	UsedAI      bool         `json:"usedAi"`
	Notice      string       `json:"notice,omitempty"`
}
