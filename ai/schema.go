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

import (
	"encoding/json"
	"sync"

	"github.com/poiesic/lanelist/core"
)

var (
	suggestionSchemaOnce sync.Once
	suggestionSchemaRaw  map[string]any
	suggestionSchemaText string
)

// SuggestionSchema returns the canonical JSON schema for a suggestion
// payload: an object with exactly one property, "items", holding carrier
// suggestions. Every consumer derives from this one definition (the tool
// parameters and response format sent to the provider, the prompt fragment,
// and the output validator) so the requested and accepted shapes stay in
// lockstep.
//
// The returned map is shared; callers must not mutate it.
func SuggestionSchema() map[string]any {
	suggestionSchemaOnce.Do(buildSuggestionSchema)
	return suggestionSchemaRaw
}

// SuggestionSchemaJSON returns the canonical schema as indented JSON for
// embedding in prompt text.
func SuggestionSchemaJSON() string {
	suggestionSchemaOnce.Do(buildSuggestionSchema)
	return suggestionSchemaText
}

func buildSuggestionSchema() {
	enum := make([]any, 0, len(core.TransportTypes))
	for _, t := range core.TransportTypes {
		enum = append(enum, string(t))
	}

	suggestionSchemaRaw = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "string"},
						"name": map[string]any{"type": "string"},
						"types": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
								"enum": enum,
							},
						},
						"lanes": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"origin":      map[string]any{"type": "string"},
									"destination": map[string]any{"type": "string"},
								},
								"required":             []any{"origin", "destination"},
								"additionalProperties": false,
							},
						},
						"description": map[string]any{"type": "string"},
						"logoEmoji":   map[string]any{"type": "string"},
					},
					"required":             []any{"id", "name", "types", "lanes"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	}

	text, err := json.MarshalIndent(suggestionSchemaRaw, "", "  ")
	if err != nil {
		// The schema is a static literal; a marshal failure is a programming error.
		panic(err)
	}
	suggestionSchemaText = string(text)
}
