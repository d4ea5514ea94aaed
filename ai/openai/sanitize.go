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

import "strings"

// sanitizeJSON cleans raw model output before parsing: markdown code fences
// are stripped and trailing partial output after the last complete closing
// bracket or brace is dropped. Models that run out of tokens mid-object
// otherwise leave unparseable tails.
func sanitizeJSON(s string) string {
	s = stripFences(s)
	s = truncateToLastClosing(s)
	return s
}

// stripFences removes markdown code fences if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// truncateToLastClosing cuts the string at the last '}' or ']', whichever
// comes later. Returns the input unchanged when neither occurs.
func truncateToLastClosing(s string) string {
	brace := strings.LastIndexByte(s, '}')
	bracket := strings.LastIndexByte(s, ']')
	last := brace
	if bracket > last {
		last = bracket
	}
	if last < 0 {
		return s
	}
	return s[:last+1]
}
