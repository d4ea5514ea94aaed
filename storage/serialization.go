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


package storage

import (
	"encoding/json"
	"fmt"

	"github.com/poiesic/lanelist/core"
)

// MarshalCarrier serializes a Carrier document to bytes.
func MarshalCarrier(carrier *core.Carrier) ([]byte, error) {
	data, err := json.Marshal(carrier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalCarrier deserializes a Carrier document from bytes.
func UnmarshalCarrier(data []byte) (*core.Carrier, error) {
	var carrier core.Carrier
	if err := json.Unmarshal(data, &carrier); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &carrier, nil
}
