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
	"fmt"
)

// ValidatePayload parses raw JSON claiming to be a suggestion payload and
// validates it against the canonical schema. Unknown properties at any
// object level are stripped rather than rejected; structural problems
// (wrong types, missing required fields, enum violations) are collected as
// error strings. The payload is valid when the error list is empty.
//
// Validation never panics and never performs I/O; callers treat a non-empty
// error list as a recoverable condition and degrade.
func ValidatePayload(data []byte) (*SuggestionPayload, []string) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, []string{fmt.Sprintf("payload: invalid JSON: %v", err)}
	}

	var errs []string
	normalized := validateNode(SuggestionSchema(), raw, "payload", &errs)
	if len(errs) > 0 {
		return nil, errs
	}

	// Re-encode the normalized tree into the typed payload. The tree already
	// satisfies the schema, so this round trip cannot fail structurally.
	encoded, err := json.Marshal(normalized)
	if err != nil {
		return nil, []string{fmt.Sprintf("payload: re-encoding failed: %v", err)}
	}
	var payload SuggestionPayload
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return nil, []string{fmt.Sprintf("payload: decoding failed: %v", err)}
	}
	return &payload, nil
}

// validateNode checks a decoded JSON value against a schema node and returns
// the normalized value with unknown object properties removed. Errors are
// appended to errs with a JSON-path style location.
func validateNode(schema map[string]any, value any, path string, errs *[]string) any {
	nodeType, _ := schema["type"].(string)

	switch nodeType {
	case "object":
		obj, ok := value.(map[string]any)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("%s: expected object, got %s", path, jsonTypeName(value)))
			return nil
		}

		properties, _ := schema["properties"].(map[string]any)
		result := make(map[string]any, len(properties))

		for name, propSchema := range properties {
			propNode, ok := propSchema.(map[string]any)
			if !ok {
				continue
			}
			propValue, present := obj[name]
			if !present {
				continue
			}
			result[name] = validateNode(propNode, propValue, path+"."+name, errs)
		}

		required, _ := schema["required"].([]any)
		for _, req := range required {
			name, _ := req.(string)
			if _, present := obj[name]; !present {
				*errs = append(*errs, fmt.Sprintf("%s: missing required property %q", path, name))
			}
		}

		// Properties absent from the schema are stripped, not rejected.
		return result

	case "array":
		arr, ok := value.([]any)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("%s: expected array, got %s", path, jsonTypeName(value)))
			return nil
		}
		itemSchema, _ := schema["items"].(map[string]any)
		result := make([]any, 0, len(arr))
		for i, item := range arr {
			result = append(result, validateNode(itemSchema, item, fmt.Sprintf("%s[%d]", path, i), errs))
		}
		return result

	case "string":
		s, ok := value.(string)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("%s: expected string, got %s", path, jsonTypeName(value)))
			return nil
		}
		if enum, ok := schema["enum"].([]any); ok {
			found := false
			for _, allowed := range enum {
				if allowed == s {
					found = true
					break
				}
			}
			if !found {
				*errs = append(*errs, fmt.Sprintf("%s: %q is not an allowed value", path, s))
			}
		}
		return s

	default:
		// The canonical schema only uses object, array, and string nodes.
		*errs = append(*errs, fmt.Sprintf("%s: unsupported schema node %q", path, nodeType))
		return nil
	}
}

// jsonTypeName names a decoded JSON value's type for error messages.
func jsonTypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
