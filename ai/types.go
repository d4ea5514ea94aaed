package ai

import "github.com/poiesic/lanelist/core"

const (
	// DefaultConfidence is the fixed confidence attached to AI-sourced
	// suggestions. It signals provenance, not a measured probability.
	DefaultConfidence = 0.55

	// MaxSuggestions caps how many items a strategy may return.
	MaxSuggestions = 5
)

// SuggestedLane is a lane as produced by a generation strategy.
type SuggestedLane struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// SuggestedItem is a single carrier suggestion as produced by a generation
// strategy, after schema validation.
type SuggestedItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Types       []string        `json:"types"`
	Lanes       []SuggestedLane `json:"lanes"`
	Description string          `json:"description,omitempty"`
	LogoEmoji   string          `json:"logoEmoji,omitempty"`
}

// SuggestionPayload is the wrapper structure strategies parse provider
// output into.
type SuggestionPayload struct {
	Items []SuggestedItem `json:"items"`
}

// ToSuggestions maps validated payload items onto the response shape.
// Every AI-sourced suggestion is unverified, tagged source "ai", and carries
// the fixed confidence score. At most MaxSuggestions items are kept.
func (p *SuggestionPayload) ToSuggestions() []core.Suggestion {
	items := p.Items
	if len(items) > MaxSuggestions {
		items = items[:MaxSuggestions]
	}

	suggestions := make([]core.Suggestion, 0, len(items))
	for _, item := range items {
		types := make([]core.TransportType, 0, len(item.Types))
		for _, t := range item.Types {
			types = append(types, core.TransportType(t))
		}
		lanes := make([]core.Lane, 0, len(item.Lanes))
		for _, lane := range item.Lanes {
			lanes = append(lanes, core.Lane{
				Origin:      lane.Origin,
				Destination: lane.Destination,
			})
		}

		confidence := DefaultConfidence
		suggestions = append(suggestions, core.Suggestion{
			Carrier: core.Carrier{
				ID:          item.ID,
				Name:        item.Name,
				Verified:    false,
				Types:       types,
				Lanes:       lanes,
				Description: item.Description,
				LogoEmoji:   item.LogoEmoji,
			},
			Source:     core.SourceAI,
			Confidence: &confidence,
		})
	}
	return suggestions
}
