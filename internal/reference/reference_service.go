package reference

import (
	"context"
	"encoding/json"
	"time"

	"go-workforce/internal/project"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Lookup tables change rarely; a short TTL keeps edits visible without a
// round trip to Postgres on every form load.
const lookupCacheTTL = 15 * time.Minute

const (
	projectsCacheKey  = "reference:projects"
	phasesCacheKey    = "reference:phases"
	costCodesCacheKey = "reference:cost-codes"
	miscCacheKey      = "reference:misc"
	customersCacheKey = "reference:customers"
)

//go:generate mockgen -source=reference_service.go -destination=mock/reference_service_mock.go -package=mock
type Service interface {
	GetActiveProjects(ctx context.Context) ([]project.Project, error)
	GetPhases(ctx context.Context) ([]Phase, error)
	GetCostCodes(ctx context.Context) ([]CostCode, error)
	GetMisc(ctx context.Context) ([]Miscellaneous, error)
	GetCustomers(ctx context.Context) ([]project.Customer, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("reference.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reference.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetActiveProjects(ctx context.Context) ([]project.Project, error) {
	return fetchCached(ctx, s, projectsCacheKey, s.repo.FindActiveProjects)
}

func (s *service) GetPhases(ctx context.Context) ([]Phase, error) {
	return fetchCached(ctx, s, phasesCacheKey, s.repo.FindAllPhases)
}

func (s *service) GetCostCodes(ctx context.Context) ([]CostCode, error) {
	return fetchCached(ctx, s, costCodesCacheKey, s.repo.FindAllCostCodes)
}

func (s *service) GetMisc(ctx context.Context) ([]Miscellaneous, error) {
	return fetchCached(ctx, s, miscCacheKey, s.repo.FindAllMisc)
}

func (s *service) GetCustomers(ctx context.Context) ([]project.Customer, error) {
	return fetchCached(ctx, s, customersCacheKey, s.repo.FindAllCustomers)
}

// fetchCached reads a lookup list through Redis, deduplicating concurrent
// misses with singleflight.
func fetchCached[T any](ctx context.Context, s *service, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var items []T
			if json.Unmarshal([]byte(cached), &items) == nil {
				return items, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		items, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(items); err == nil {
				s.rdb.Set(ctx, key, data, lookupCacheTTL)
			}
		}
		return items, nil
	})
	if err != nil {
		s.logger.Error("lookup fetch failed", zap.String("cache_key", key), zap.Error(err))
		return nil, err
	}

	return v.([]T), nil
}
