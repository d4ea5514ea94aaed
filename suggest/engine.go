package suggest

import (
	"context"
	"log/slog"

	"github.com/poiesic/lanelist/ai"
	"github.com/poiesic/lanelist/core"
	"github.com/poiesic/lanelist/ratelimit"
)

// minFilterFields is the minimum number of populated filter fields required
// before generation is attempted. Requests broader than this cannot
// constrain generation quality enough to be worth a provider call.
const minFilterFields = 2

// Engine runs the guardrail sequence and the ordered strategy chain.
type Engine struct {
	config     *ai.Config
	strategies []ai.Strategy
	limiter    *ratelimit.Limiter
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a suggestion engine. An empty strategy slice is legal:
// every request then resolves to the stub, which is the correct behavior
// for deployments without a provider.
func NewEngine(config *ai.Config, strategies []ai.Strategy, limiter *ratelimit.Limiter, opts ...Option) (*Engine, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}
	if limiter == nil {
		return nil, ErrLimiterRequired
	}

	e := &Engine{
		config:     config,
		strategies: strategies,
		limiter:    limiter,
		logger:     slog.Default().With("component", "suggest-engine"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Suggest produces carrier suggestions for the filter. It never fails and
// always returns at least one suggestion: any failing gate, strategy error,
// or valid-but-empty strategy result degrades toward the stub.
//
// rateKey identifies the caller for rate limiting, typically the client IP.
func (e *Engine) Suggest(ctx context.Context, filter *core.SearchFilter, rateKey string) []core.Suggestion {
	if filter == nil {
		filter = &core.SearchFilter{}
	}

	// Gate 1: feature toggle.
	if !e.config.Enabled {
		e.logger.Debug("generation disabled, serving stub")
		return Stub(filter)
	}

	// Gate 2: filter completeness.
	if filter.PopulatedFields() < minFilterFields {
		e.logger.Debug("filter too broad for generation, serving stub",
			"populated", filter.PopulatedFields())
		return Stub(filter)
	}

	// Gate 3: rate limit.
	if !e.limiter.Allow(rateKey) {
		e.logger.Warn("rate limit exceeded, serving stub", "key", rateKey)
		return Stub(filter)
	}

	// Gate 4: provider credential.
	if e.config.Token == "" {
		e.logger.Debug("no provider credential configured, serving stub")
		return Stub(filter)
	}

	// Strategies run strictly sequentially so the first success
	// short-circuits later attempts.
	for _, strategy := range e.strategies {
		suggestions := e.attempt(ctx, strategy, filter)
		if len(suggestions) > 0 {
			return suggestions
		}
	}

	e.logger.Info("all strategies exhausted, serving stub")
	return Stub(filter)
}

// attempt runs one strategy under the call timeout. Errors and empty
// results both yield nil; "valid but empty" is not success.
func (e *Engine) attempt(ctx context.Context, strategy ai.Strategy, filter *core.SearchFilter) []core.Suggestion {
	callCtx, cancel := context.WithTimeout(ctx, e.config.CallTimeout)
	defer cancel()

	suggestions, err := strategy.Generate(callCtx, filter)
	if err != nil {
		e.logger.Warn("strategy failed", "strategy", strategy.Name(), "err", err)
		return nil
	}
	if len(suggestions) == 0 {
		e.logger.Debug("strategy returned no items", "strategy", strategy.Name())
		return nil
	}

	e.logger.Debug("strategy succeeded",
		"strategy", strategy.Name(),
		"items", len(suggestions))
	return suggestions
}
