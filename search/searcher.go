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

package search

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/lanelist/core"
	"github.com/poiesic/lanelist/storage"
)

// DBResultLimit caps how many carriers a single search reads from storage.
const DBResultLimit = 50

// Notices attached to fallback results. The notice and the usedAi flag are
// the only externally visible signals of an internal failure.
const (
	NoticeNoMatches        = "no verified carriers found"
	NoticeQueryError       = "error querying the database"
	NoticeStoreUnavailable = "database unavailable"
)

// Suggester produces fallback suggestions when the store cannot answer.
// *suggest.Engine satisfies this.
type Suggester interface {
	Suggest(ctx context.Context, filter *core.SearchFilter, rateKey string) []core.Suggestion
}

// Searcher resolves directory searches against the carrier store with the
// suggestion engine as the fallback tier.
type Searcher struct {
	repo   storage.CarrierRepository
	engine Suggester
	logger *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSearcher creates a Searcher. The repository may be nil when the store
// could not be opened; searches then resolve through the engine with an
// unavailability notice.
func NewSearcher(repo storage.CarrierRepository, engine Suggester, opts ...Option) (*Searcher, error) {
	if engine == nil {
		return nil, ErrEngineRequired
	}

	s := &Searcher{
		repo:   repo,
		engine: engine,
		logger: slog.Default().With("component", "searcher"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Search resolves a directory search. Database matches win; otherwise the
// suggestion engine answers with a notice. Search never fails: the worst
// case is a single stub suggestion.
func (s *Searcher) Search(ctx context.Context, filter *core.SearchFilter, rateKey string) *core.SearchResult {
	if s.repo == nil {
		s.logger.Warn("carrier store unavailable, using suggestion engine")
		return s.fallback(ctx, filter, rateKey, NoticeStoreUnavailable)
	}

	carriers, err := s.repo.FindCarriers(ctx, filter, DBResultLimit)
	if err != nil {
		if errors.Is(err, storage.ErrStorageClosed) {
			s.logger.Warn("carrier store closed, using suggestion engine")
			return s.fallback(ctx, filter, rateKey, NoticeStoreUnavailable)
		}
		s.logger.Error("carrier query failed", "error", err)
		return s.fallback(ctx, filter, rateKey, NoticeQueryError)
	}

	if len(carriers) == 0 {
		return s.fallback(ctx, filter, rateKey, NoticeNoMatches)
	}

	results := make([]core.Suggestion, 0, len(carriers))
	for _, c := range carriers {
		results = append(results, core.Suggestion{
			Carrier: *c,
			Source:  core.SourceDB,
		})
	}
	return &core.SearchResult{
		Carriers: results,
		UsedAI:   false,
	}
}

func (s *Searcher) fallback(ctx context.Context, filter *core.SearchFilter, rateKey, notice string) *core.SearchResult {
	return &core.SearchResult{
		Carriers:    []core.Suggestion{},
		Suggestions: s.engine.Suggest(ctx, filter, rateKey),
		UsedAI:      true,
		Notice:      notice,
	}
}
