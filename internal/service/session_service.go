package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clinic-admin/internal/domain/repository"
	"clinic-admin/internal/session"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSessionUserNotFound = errors.New("session user not found")

const sessionKeyPrefix = "session:"

// SessionService is the single writer of the cached profile payloads.
// Everything that needs the current principal goes through Refresh (fresh
// from the database, cache rewritten) or Cached (redis, normalized through
// session.FromPayload so legacy nested payloads still resolve).
type SessionService interface {
	Refresh(ctx context.Context, userID uuid.UUID) (*session.Session, error)
	Cached(ctx context.Context, userID uuid.UUID) (*session.Session, error)
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type sessionService struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewSessionService(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	redisClient *redis.Client,
	cacheTTL time.Duration,
) SessionService {
	return &sessionService{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Refresh loads the user row, rebuilds the canonical session and rewrites
// the cache. Inactive users resolve to not-found so the guard treats them
// as unauthenticated.
func (s *sessionService) Refresh(ctx context.Context, userID uuid.UUID) (*session.Session, error) {
	user, err := s.userRepo.FindByID(s.db.WithContext(ctx), userID)
	if err != nil {
		s.log.Warnf("Failed to refresh session for %s: %+v", userID, err)
		return nil, err
	}
	if user == nil || user.IsActive == nil || !*user.IsActive {
		return nil, ErrSessionUserNotFound
	}

	sess := session.FromUser(user)

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := s.redisClient.Set(ctx, sessionKey(userID), payload, s.cacheTTL).Err(); err != nil {
		// Cache write failure is not fatal; the session itself is fresh.
		s.log.Warnf("Failed to cache session for %s: %+v", userID, err)
	}

	return sess, nil
}

// Cached reads the cached payload, falling back to Refresh on a miss.
func (s *sessionService) Cached(ctx context.Context, userID uuid.UUID) (*session.Session, error) {
	raw, err := s.redisClient.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return s.Refresh(ctx, userID)
		}
		return nil, err
	}

	sess := session.FromPayload(raw)
	if sess == nil {
		return s.Refresh(ctx, userID)
	}
	return sess, nil
}

func (s *sessionService) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return s.redisClient.Del(ctx, sessionKey(userID)).Err()
}

func sessionKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, userID.String())
}
