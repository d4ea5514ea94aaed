package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/lanelist/ai"
	"github.com/poiesic/lanelist/core"
)

const suggestionPromptTemplate = `You suggest freight carriers that plausibly serve a shipper's requested lane and equipment type. The carriers you produce are UNVERIFIED suggestions for further research, not confirmed businesses.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation, greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing brace }. Your output must exactly follow this schema:

%s

Rules:
- Suggest between 1 and %d carriers.
- The id field is a short lowercase slug derived from the name.
- Type values must match exactly one of: %s.
- Lane origin and destination are uppercase two-letter country codes.
- Never invent contact details (email, phone, website). Leave them out entirely.
- Prefer carriers matching the requested type and lane; when the request is broad, favor plausible regional operators.
- If you cannot produce plausible carriers, return "items": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

// buildSystemPrompt creates the system prompt with the canonical schema and
// transport types embedded.
func buildSystemPrompt() string {
	types := make([]string, 0, len(core.TransportTypes))
	for _, t := range core.TransportTypes {
		types = append(types, string(t))
	}
	return fmt.Sprintf(suggestionPromptTemplate,
		ai.SuggestionSchemaJSON(),
		ai.MaxSuggestions,
		strings.Join(types, ", "))
}

// buildUserPrompt describes the filter as a request line.
// Only populated fields are mentioned.
func buildUserPrompt(filter *core.SearchFilter) string {
	var parts []string
	if filter.Type != "" {
		parts = append(parts, "equipment type "+string(filter.Type))
	}
	if filter.Origin != "" {
		parts = append(parts, "origin "+filter.Origin)
	}
	if filter.Destination != "" {
		parts = append(parts, "destination "+filter.Destination)
	}
	if len(parts) == 0 {
		return "Suggest freight carriers."
	}
	return "Suggest freight carriers for: " + strings.Join(parts, ", ") + "."
}
