package ai

import (
	"context"

	"github.com/poiesic/lanelist/core"
)

// Strategy is a single carrier-generation approach against a language-model
// provider. Implementations must be thread-safe for concurrent use.
//
// A strategy either returns validated suggestions or an error; it never
// returns raw provider output. A nil-error empty result is legal and means
// "the provider answered with nothing useful"; callers treat it as a soft
// failure and fall through to the next strategy.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Generate produces carrier suggestions for the filter.
	Generate(ctx context.Context, filter *core.SearchFilter) ([]core.Suggestion, error)
}
