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


package lanelist

import (
	"log/slog"

	"github.com/poiesic/lanelist/ai"
	"github.com/poiesic/lanelist/ai/openai"
	"github.com/poiesic/lanelist/ratelimit"
	"github.com/poiesic/lanelist/search"
	"github.com/poiesic/lanelist/storage"
	"github.com/poiesic/lanelist/storage/badger"
	"github.com/poiesic/lanelist/suggest"
)

// Directory is the carrier directory: the Badger-backed carrier store plus
// the suggestion fallback chain, wired together behind one handle.
type Directory struct {
	backend     *badger.Backend
	carrierRepo storage.CarrierRepository
	aiConfig    *ai.Config
	limiter     *ratelimit.Limiter
	logger      *slog.Logger
}

// DirectoryOption configures a Directory.
type DirectoryOption func(*directoryOptions)

type directoryOptions struct {
	aiConfig *ai.Config
	limiter  *ratelimit.Limiter
	inMemory bool
}

// WithAIConfig sets the suggestion provider configuration.
func WithAIConfig(config *ai.Config) DirectoryOption {
	return func(o *directoryOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithRateLimiter sets the limiter shared by all suggestion calls.
func WithRateLimiter(limiter *ratelimit.Limiter) DirectoryOption {
	return func(o *directoryOptions) {
		if limiter != nil {
			o.limiter = limiter
		}
	}
}

// WithInMemory opens the store without a backing file. Used by tests.
func WithInMemory() DirectoryOption {
	return func(o *directoryOptions) {
		o.inMemory = true
	}
}

func NewDirectory(filePath string, opts ...DirectoryOption) (*Directory, error) {
	// Apply options
	options := &directoryOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
		limiter:  ratelimit.New(),
	}
	for _, opt := range opts {
		opt(options)
	}
	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create carrier repository
	carrierRepo, err := badger.NewCarrierRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Directory{
		backend:     backend,
		carrierRepo: carrierRepo,
		aiConfig:    options.aiConfig,
		limiter:     options.limiter,
		logger:      slog.Default(),
	}, nil
}

func (d *Directory) Close() error {
	// Close repositories
	if err := d.carrierRepo.Close(); err != nil {
		d.logger.Error("error closing carrier repository", "err", err)
		return err
	}

	// Close backend
	if err := d.backend.Close(); err != nil {
		d.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (d *Directory) CarrierRepository() storage.CarrierRepository {
	return d.carrierRepo
}

// NewSuggestionEngine builds the three-tier generation engine over the
// directory's provider configuration and shared rate limiter.
func (d *Directory) NewSuggestionEngine(opts ...suggest.Option) (*suggest.Engine, error) {
	strategies, err := openai.NewStrategies(d.aiConfig)
	if err != nil {
		return nil, err
	}
	return suggest.NewEngine(d.aiConfig, strategies, d.limiter, opts...)
}

func (d *Directory) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	engine, err := d.NewSuggestionEngine()
	if err != nil {
		return nil, err
	}
	return search.NewSearcher(d.carrierRepo, engine, opts...)
}
