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


package core

import "fmt"

// ValidateCarrier validates a Carrier according to domain rules.
//
// Validation rules:
//   - ID and Name must not be empty
//   - Types must contain at least one valid transport type
//   - Every lane must pass ValidateLane
//   - Rating, when present, must be in [0, 5]
//
// NOT validated:
//   - Contact details (all optional, free-form)
//   - Lane uniqueness (duplicates are permitted)
func ValidateCarrier(carrier *Carrier) error {
	if carrier == nil {
		return fmt.Errorf("%w: carrier is nil", ErrInvalidCarrier)
	}

	if carrier.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCarrier, ErrEmptyCarrierID)
	}

	if carrier.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCarrier, ErrEmptyCarrierName)
	}

	if len(carrier.Types) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCarrier, ErrNoTransportTypes)
	}
	for _, t := range carrier.Types {
		if err := ValidateTransportType(t); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCarrier, err)
		}
	}

	for _, lane := range carrier.Lanes {
		if err := ValidateLane(lane); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCarrier, err)
		}
	}

	if carrier.Rating != nil && (*carrier.Rating < 0 || *carrier.Rating > 5) {
		return fmt.Errorf("%w: %w", ErrInvalidCarrier, ErrInvalidRating)
	}

	return nil
}

// ValidateLane validates that both lane endpoints are two-letter country codes.
func ValidateLane(lane Lane) error {
	if !IsCountryCode(lane.Origin) {
		return fmt.Errorf("%w: origin %q: %w", ErrInvalidLane, lane.Origin, ErrInvalidCountryCode)
	}
	if !IsCountryCode(lane.Destination) {
		return fmt.Errorf("%w: destination %q: %w", ErrInvalidLane, lane.Destination, ErrInvalidCountryCode)
	}
	return nil
}

// ValidateTransportType validates that a TransportType has a known value.
func ValidateTransportType(t TransportType) error {
	for _, known := range TransportTypes {
		if t == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidTransportType, t)
}

// IsCountryCode checks whether a string is a two-letter uppercase country code.
func IsCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
