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


// Package openai implements the carrier-generation strategies against
// OpenAI-compatible chat APIs using the langchaingo library.
//
// Three strategies are provided, in decreasing order of output discipline:
//
//   - tool-call: the model is forced to invoke a function whose parameter
//     schema is the canonical suggestion schema; the function-call arguments
//     are parsed as JSON.
//   - json-schema: the completion is constrained server-side to the same
//     schema via the json_schema response format with strict mode.
//   - json-object: plain JSON mode; the shape is described only in the
//     prompt text, so output is sanitized and validated client-side.
//
// All three parse and validate through the same canonical schema, so a
// payload that passes one strategy's validation would pass any other's.
//
// # Usage
//
//	config := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),  // /v1 added automatically
//	    ai.WithModel("qwen2.5:3b"),
//	    ai.WithToken(token),
//	)
//
//	strategies, err := openai.NewStrategies(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
package openai
