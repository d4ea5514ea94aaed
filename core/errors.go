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

import "errors"

// Domain validation errors
var (
	// ErrInvalidCarrier indicates a Carrier failed validation.
	ErrInvalidCarrier = errors.New("invalid carrier")

	// ErrInvalidLane indicates a Lane failed validation.
	ErrInvalidLane = errors.New("invalid lane")

	// ErrEmptyCarrierID indicates the carrier ID field is empty.
	ErrEmptyCarrierID = errors.New("carrier id cannot be empty")

	// ErrEmptyCarrierName indicates the carrier Name field is empty.
	ErrEmptyCarrierName = errors.New("carrier name cannot be empty")

	// ErrNoTransportTypes indicates a carrier has no transport types.
	ErrNoTransportTypes = errors.New("carrier must have at least one transport type")

	// ErrInvalidTransportType indicates an unknown transport type value.
	ErrInvalidTransportType = errors.New("invalid transport type")

	// ErrInvalidCountryCode indicates a lane endpoint is not a two-letter country code.
	ErrInvalidCountryCode = errors.New("country code must be two letters")

	// ErrInvalidRating indicates a rating outside the 0-5 range.
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)
