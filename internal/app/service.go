// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/okian/roam/internal/adapters/catalog"
	"github.com/okian/roam/internal/domain/dedupe"
	"github.com/okian/roam/internal/domain/model"
	"github.com/okian/roam/internal/domain/ranking"
	"github.com/okian/roam/internal/domain/scoring"
	"github.com/okian/roam/pkg/logger"
	"github.com/okian/roam/pkg/metrics"
)

// Request is one scoring request: what to recommend, where, and for whom.
type Request struct {
	CityID     string                 `json:"city_id"`
	Category   string                 `json:"-"`
	Context    model.ScoringContext   `json:"context"`
	Pagination model.PaginationParams `json:"pagination"`
}

// Result is the category-mode-dependent output shape: Page for paged
// categories, Items for top-N categories. Exactly one side is set.
type Result struct {
	Mode  scoring.OutputMode
	Page  *model.Page
	Items []model.ScoredCandidate
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithProvider sets the candidate provider.
func WithProvider(p catalog.Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.provider = p
		}
	}
}

// WithEngine sets the scoring engine.
func WithEngine(e *scoring.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithCategories replaces the default category configurations.
func WithCategories(configs []scoring.CategoryConfig) Option {
	return func(s *Service) {
		if len(configs) > 0 {
			s.categoryConfigs = configs
		}
	}
}

// WithMaxPageSize caps the page size a caller may request.
func WithMaxPageSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxPageSize = n
		}
	}
}

// WithSeedCities configures demo cities loaded into the default
// in-memory catalog on Start. Ignored when a provider is injected.
func WithSeedCities(cities map[string]model.GeoPoint, perCity int, seed int64) Option {
	return func(s *Service) {
		s.seedCities = cities
		if perCity > 0 {
			s.seedPerCity = perCity
		}
		s.seedValue = seed
	}
}

// WithSeason sets the active season for the default in-memory catalog.
// Ignored when a provider is injected.
func WithSeason(season string) Option {
	return func(s *Service) {
		if season != "" {
			s.season = season
		}
	}
}

// Service implements the API dependencies for the recommendation system.
type Service struct {
	mu sync.RWMutex

	engine   *scoring.Engine
	provider catalog.Provider
	registry scoring.Registry
	forYou   scoring.CategoryConfig

	categoryConfigs []scoring.CategoryConfig
	maxPageSize     int

	seedCities  map[string]model.GeoPoint
	seedPerCity int
	seedValue   int64
	season      string

	started bool
	logger  logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		categoryConfigs: scoring.DefaultCategories(),
		forYou:          scoring.ForYouCategory(),
		maxPageSize:     50,
		seedPerCity:     150,
		seedValue:       1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates configuration and builds any components not injected
// through options.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	registry, err := scoring.NewRegistry(s.categoryConfigs)
	if err != nil {
		return fmt.Errorf("category registry: %w", err)
	}
	s.registry = registry
	if err := s.forYou.Validate(); err != nil {
		return fmt.Errorf("for-you config: %w", err)
	}

	if s.engine == nil {
		s.engine, err = scoring.New()
		if err != nil {
			return fmt.Errorf("scoring engine: %w", err)
		}
	}

	if s.provider == nil {
		var catOpts []catalog.Option
		if s.season != "" {
			catOpts = append(catOpts, catalog.WithSeason(s.season))
		}
		mem := catalog.NewMemoryCatalog(catOpts...)
		for city, center := range s.seedCities {
			mem.SeedCity(city, center, s.seedPerCity, s.seedValue)
			s.logger.Info(ctx, "seeded demo city",
				logger.String("city", city),
				logger.Int("candidates", mem.Count(city)),
			)
		}
		s.provider = mem
	}

	s.started = true
	s.logger.Info(ctx, "recommendation service started",
		logger.Int("categories", len(s.registry)),
		logger.Int("maxPageSize", s.maxPageSize),
	)
	return nil
}

// Stop marks the service stopped. The pipeline holds no resources that
// need releasing; this exists for lifecycle symmetry with Start.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// Categories returns the configured category identifiers, sorted.
func (s *Service) Categories(_ context.Context) []string {
	ids := s.registry.IDs()
	sort.Strings(ids)
	return ids
}

// Recommend runs the full pipeline for one category: fetch, score,
// rank, then shape the output per the category's mode.
func (s *Service) Recommend(ctx context.Context, req Request) (Result, error) {
	cat, err := s.registry.Lookup(req.Category)
	if err != nil {
		return Result{}, err
	}

	candidates, err := s.provider.Candidates(ctx, req.CityID, cat)
	if err != nil {
		metrics.RecordCatalogError()
		return Result{}, fmt.Errorf("candidate fetch: %w", err)
	}

	ranked, err := s.scoreAndRank(ctx, cat, req.Context, candidates)
	if err != nil {
		return Result{}, err
	}

	if cat.Mode == scoring.ModeTopN {
		return Result{Mode: scoring.ModeTopN, Items: ranking.TopN(ranked, cat.TopN)}, nil
	}

	size := req.Pagination.PageSize
	if size > s.maxPageSize {
		size = s.maxPageSize
	}
	page := ranking.Paginate(ranked, req.Pagination.Page, size, cat.DefaultPageSize)
	return Result{Mode: scoring.ModePaged, Page: &page}, nil
}

// ForYou fetches the attractions and restaurants candidate sets
// concurrently, joins them, and scores the combined pool under the
// for-you config. Fetch failure on either side is a hard failure.
func (s *Service) ForYou(ctx context.Context, req Request) ([]model.ScoredCandidate, error) {
	attractions, err := s.registry.Lookup("attractions")
	if err != nil {
		return nil, err
	}
	restaurants, err := s.registry.Lookup("restaurants")
	if err != nil {
		return nil, err
	}

	var (
		wg     sync.WaitGroup
		sets   [2][]model.Candidate
		errs   [2]error
		inputs = [2]scoring.CategoryConfig{attractions, restaurants}
	)
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sets[i], errs[i] = s.provider.Candidates(ctx, req.CityID, inputs[i])
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			metrics.RecordCatalogError()
			return nil, fmt.Errorf("candidate fetch: %w", err)
		}
	}

	combined := dedupe.Merge(sets[0], sets[1])
	ranked, err := s.scoreAndRank(ctx, s.forYou, req.Context, combined)
	if err != nil {
		return nil, err
	}
	return ranking.TopN(ranked, s.forYou.TopN), nil
}

func (s *Service) scoreAndRank(ctx context.Context, cat scoring.CategoryConfig, sc model.ScoringContext, candidates []model.Candidate) ([]model.ScoredCandidate, error) {
	start := time.Now()
	scored, err := s.engine.Score(ctx, cat, sc, candidates)
	if err != nil {
		return nil, err
	}

	metrics.RecordScoringPass(cat.ID)
	metrics.RecordCandidatesScored(len(scored))
	metrics.RecordScoringDuration(cat.ID, float64(time.Since(start).Milliseconds()))

	ranked := ranking.Rank(scored, cat.Threshold)
	if len(ranked) == 0 {
		metrics.RecordEmptyResult(cat.ID)
	}
	return ranked, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"categories":  len(s.registry),
		"maxPageSize": s.maxPageSize,
	}
	if mem, ok := s.provider.(*catalog.MemoryCatalog); ok {
		cities := mem.Cities()
		sort.Strings(cities)
		total := 0
		for _, c := range cities {
			total += mem.Count(c)
		}
		stats["cities"] = cities
		stats["catalogSize"] = total
		metrics.UpdateCatalogSize(total)
	}
	return stats
}
