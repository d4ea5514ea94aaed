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


package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/lanelist/ai"
	"github.com/poiesic/lanelist/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	suggestToolName = "suggest_carriers"
	schemaName      = "carrier_suggestions"

	generationTemperature = 0.7
)

// NewStrategies builds the ordered strategy chain against an
// OpenAI-compatible provider: tool-call first, then schema-constrained,
// then freeform JSON. Callers iterate the slice in order.
func NewStrategies(config *ai.Config) ([]ai.Strategy, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Local OpenAI-compatible services don't require authentication but the
	// client insists on a token.
	token := config.Token
	if token == "" {
		token = "none"
	}

	base, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	// The json_schema response format is a client-level option, so the
	// schema-constrained strategy gets its own client.
	strict, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(token),
		openai.WithModel(config.Model),
		openai.WithResponseFormat(suggestionResponseFormat()),
	)
	if err != nil {
		return nil, err
	}

	return []ai.Strategy{
		&toolCallStrategy{client: base, logger: slog.Default().With("component", "openai-toolcall")},
		&schemaStrategy{client: strict, logger: slog.Default().With("component", "openai-schema")},
		&freeformStrategy{client: base, logger: slog.Default().With("component", "openai-freeform")},
	}, nil
}

// promptContent builds the system and user messages for a filter.
func promptContent(filter *core.SearchFilter) []llms.MessageContent {
	return []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildUserPrompt(filter)),
			},
		},
	}
}

// parseSuggestions sanitizes, parses, and validates raw model output, then
// maps it onto the response shape. Raw output is never surfaced to callers.
func parseSuggestions(raw string, logger *slog.Logger) ([]core.Suggestion, error) {
	cleaned := sanitizeJSON(raw)

	payload, errs := ai.ValidatePayload([]byte(cleaned))
	if len(errs) > 0 {
		logger.Warn("provider output failed validation",
			"errors", strings.Join(errs, "; "))
		return nil, ai.ErrInvalidPayload
	}

	return payload.ToSuggestions(), nil
}

// toolCallStrategy forces the model to invoke the suggestion function and
// parses the function-call arguments.
type toolCallStrategy struct {
	client llms.Model
	logger *slog.Logger
}

func (s *toolCallStrategy) Name() string { return "tool-call" }

func (s *toolCallStrategy) Generate(ctx context.Context, filter *core.SearchFilter) ([]core.Suggestion, error) {
	resp, err := s.client.GenerateContent(ctx, promptContent(filter),
		llms.WithTemperature(generationTemperature),
		llms.WithTools(suggestionTools()),
		llms.WithToolChoice(llms.ToolChoice{
			Type:     "function",
			Function: &llms.FunctionReference{Name: suggestToolName},
		}),
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) < 1 {
		return nil, ai.ErrNoChoices
	}

	choice := resp.Choices[0]
	var args string
	for _, call := range choice.ToolCalls {
		if call.FunctionCall != nil && call.FunctionCall.Name == suggestToolName {
			args = call.FunctionCall.Arguments
			break
		}
	}
	if args == "" && choice.FuncCall != nil {
		args = choice.FuncCall.Arguments
	}
	if args == "" {
		return nil, ai.ErrNoToolCall
	}

	return parseSuggestions(args, s.logger)
}

// schemaStrategy requests a completion constrained server-side to the
// canonical schema in strict mode.
type schemaStrategy struct {
	client llms.Model
	logger *slog.Logger
}

func (s *schemaStrategy) Name() string { return "json-schema" }

func (s *schemaStrategy) Generate(ctx context.Context, filter *core.SearchFilter) ([]core.Suggestion, error) {
	resp, err := s.client.GenerateContent(ctx, promptContent(filter),
		llms.WithTemperature(generationTemperature),
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) < 1 {
		return nil, ai.ErrNoChoices
	}

	return parseSuggestions(resp.Choices[0].Content, s.logger)
}

// freeformStrategy requests plain JSON-object output with the shape
// described only in the prompt text.
type freeformStrategy struct {
	client llms.Model
	logger *slog.Logger
}

func (s *freeformStrategy) Name() string { return "json-object" }

func (s *freeformStrategy) Generate(ctx context.Context, filter *core.SearchFilter) ([]core.Suggestion, error) {
	resp, err := s.client.GenerateContent(ctx, promptContent(filter),
		llms.WithTemperature(generationTemperature),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) < 1 {
		return nil, ai.ErrNoChoices
	}

	return parseSuggestions(resp.Choices[0].Content, s.logger)
}

// suggestionTools declares the suggestion function with the canonical
// schema as its parameter schema.
func suggestionTools() []llms.Tool {
	return []llms.Tool{
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        suggestToolName,
				Description: "Record a set of suggested freight carriers for the shipper's request.",
				Parameters:  ai.SuggestionSchema(),
			},
		},
	}
}

// suggestionResponseFormat derives the strict json_schema response format
// from the canonical schema.
func suggestionResponseFormat() *openai.ResponseFormat {
	return &openai.ResponseFormat{
		Type: "json_schema",
		JSONSchema: &openai.ResponseFormatJSONSchema{
			Name:   schemaName,
			Strict: true,
			Schema: schemaProperty(ai.SuggestionSchema()),
		},
	}
}

// schemaProperty converts a canonical schema node into the client's
// response-format property tree.
func schemaProperty(node map[string]any) *openai.ResponseFormatJSONSchemaProperty {
	prop := &openai.ResponseFormatJSONSchemaProperty{}
	prop.Type, _ = node["type"].(string)

	if enum, ok := node["enum"].([]any); ok {
		prop.Enum = enum
	}
	if items, ok := node["items"].(map[string]any); ok {
		prop.Items = schemaProperty(items)
	}
	if props, ok := node["properties"].(map[string]any); ok {
		prop.Properties = make(map[string]*openai.ResponseFormatJSONSchemaProperty, len(props))
		for name, child := range props {
			if childNode, ok := child.(map[string]any); ok {
				prop.Properties[name] = schemaProperty(childNode)
			}
		}
	}
	if required, ok := node["required"].([]any); ok {
		for _, r := range required {
			if name, ok := r.(string); ok {
				prop.Required = append(prop.Required, name)
			}
		}
	}
	return prop
}
