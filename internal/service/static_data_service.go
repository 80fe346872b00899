package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	staticDataKeyPrefix = "static_data:"

	// Timeout for individual Redis operations
	staticCacheTimeout = 5 * time.Second
)

// StaticDataService serves reference data cache-aside from Redis with a
// database fallback. Refreshes are deduplicated through singleflight so
// concurrent route-guard entries share one database round trip instead of
// stampeding.
type StaticDataService interface {
	GetCategory(ctx context.Context, category string) ([]entity.StaticData, error)
	Warm(ctx context.Context) error
	Resync(ctx context.Context) error
	InvalidateCategory(ctx context.Context, category string) error
}

type staticDataService struct {
	db          *gorm.DB
	log         *logrus.Logger
	staticRepo  repository.StaticDataRepository
	redisClient *redis.Client
	cacheTTL    time.Duration
	group       singleflight.Group
}

func NewStaticDataService(
	db *gorm.DB,
	log *logrus.Logger,
	staticRepo repository.StaticDataRepository,
	redisClient *redis.Client,
	cacheTTL time.Duration,
) StaticDataService {
	return &staticDataService{
		db:          db,
		log:         log,
		staticRepo:  staticRepo,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// GetCategory returns the active items of one category, cache first.
func (s *staticDataService) GetCategory(ctx context.Context, category string) ([]entity.StaticData, error) {
	raw, err := s.redisClient.Get(ctx, staticDataKeyPrefix+category).Bytes()
	if err == nil {
		var items []entity.StaticData
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		// Corrupt cache entry falls through to a reload.
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warnf("Failed to read static data cache for %s: %+v", category, err)
	}

	return s.loadCategory(ctx, category)
}

// Warm ensures every known category is present in the cache. Concurrent
// callers collapse onto a single refresh.
func (s *staticDataService) Warm(ctx context.Context) error {
	_, err, _ := s.group.Do("warm", func() (interface{}, error) {
		for _, category := range knownCategories() {
			exists, err := s.redisClient.Exists(ctx, staticDataKeyPrefix+category).Result()
			if err != nil {
				return nil, err
			}
			if exists == 0 {
				if _, err := s.loadCategory(ctx, category); err != nil {
					return nil, err
				}
			}
		}
		return nil, nil
	})
	return err
}

// Resync rewrites the whole cache from the database. Runs at startup and on
// the cron schedule.
func (s *staticDataService) Resync(ctx context.Context) error {
	items, err := s.staticRepo.FindAll(s.db.WithContext(ctx))
	if err != nil {
		s.log.Warnf("Failed to load static data for resync: %+v", err)
		return err
	}

	byCategory := make(map[string][]entity.StaticData)
	for _, item := range items {
		if item.IsActive != nil && *item.IsActive {
			byCategory[item.Category] = append(byCategory[item.Category], item)
		}
	}

	for category, categoryItems := range byCategory {
		if err := s.writeCategory(ctx, category, categoryItems); err != nil {
			return err
		}
	}

	s.log.Infof("Static data resync complete: %d categories", len(byCategory))
	return nil
}

func (s *staticDataService) InvalidateCategory(ctx context.Context, category string) error {
	return s.redisClient.Del(ctx, staticDataKeyPrefix+category).Err()
}

func (s *staticDataService) loadCategory(ctx context.Context, category string) ([]entity.StaticData, error) {
	v, err, _ := s.group.Do("category:"+category, func() (interface{}, error) {
		items, err := s.staticRepo.FindByCategory(s.db.WithContext(ctx), category)
		if err != nil {
			return nil, err
		}
		if err := s.writeCategory(ctx, category, items); err != nil {
			s.log.Warnf("Failed to cache static data for %s: %+v", category, err)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.StaticData), nil
}

func (s *staticDataService) writeCategory(ctx context.Context, category string, items []entity.StaticData) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, staticCacheTimeout)
	defer cancel()

	return s.redisClient.Set(writeCtx, staticDataKeyPrefix+category, payload, s.cacheTTL).Err()
}

func knownCategories() []string {
	return []string{
		entity.StaticCategoryBloodTypes,
		entity.StaticCategoryRecordTypes,
		entity.StaticCategoryGenders,
		entity.StaticCategoryTransferStatuses,
		entity.StaticCategoryDepartments,
	}
}
