package badger

import (
	"fmt"

	"github.com/poiesic/lanelist/core"
)

// Key prefixes for different data types
const (
	carrierPrefix     = "carrec"
	carrierTypePrefix = "carrect"
	carrierLanePrefix = "carrecl"
)

// makeCarrierKey generates a key for a carrier document by ID.
func makeCarrierKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", carrierPrefix, id))
}

// makeCarrierTypeKey generates a composite key for the transport-type index.
// Format: prefix:type:id
func makeCarrierTypeKey(t core.TransportType, id string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", carrierTypePrefix, t, id))
}

// makePartialCarrierTypeKey generates a partial key for type index scans.
func makePartialCarrierTypeKey(t core.TransportType) []byte {
	return []byte(fmt.Sprintf("%s:%s:", carrierTypePrefix, t))
}

// makeCarrierLaneKey generates a composite key for the lane index.
// Origin and destination are fixed-width two-letter codes, so the composite
// sorts by origin then destination.
// Format: prefix:origin:destination:id
func makeCarrierLaneKey(lane core.Lane, id string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s:%s", carrierLanePrefix, lane.Origin, lane.Destination, id))
}

// makePartialCarrierLaneKey generates a partial key for lane index scans.
func makePartialCarrierLaneKey(origin, destination string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s:", carrierLanePrefix, origin, destination))
}
