package service

import (
	"context"
	"sync"

	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const lookupLimit = 10

// LookupService backs the search-as-you-type recipient and user pickers.
// Each new query from a user cancels that user's previous in-flight one, so
// a slow stale response can never arrive after a fresher result. Queries
// from different users never cancel each other.
type LookupService interface {
	SearchUsers(ctx context.Context, userID uuid.UUID, term string) ([]entity.User, error)
}

type lookupService struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository

	mu       sync.Mutex
	inFlight map[uuid.UUID]context.CancelFunc
}

func NewLookupService(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository) LookupService {
	return &lookupService{
		db:       db,
		log:      log,
		userRepo: userRepo,
		inFlight: make(map[uuid.UUID]context.CancelFunc),
	}
}

func (s *lookupService) SearchUsers(ctx context.Context, userID uuid.UUID, term string) ([]entity.User, error) {
	if term == "" {
		return nil, nil
	}

	queryCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if prev := s.inFlight[userID]; prev != nil {
		prev()
	}
	s.inFlight[userID] = cancel
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		// Release the slot unless a newer query has already taken it over.
		if queryCtx.Err() == nil {
			delete(s.inFlight, userID)
		}
		s.mu.Unlock()
	}()

	users, err := s.userRepo.SearchActive(s.db.WithContext(queryCtx), term, lookupLimit)
	if err != nil {
		if queryCtx.Err() != nil {
			// Superseded by a newer query from the same user; the caller
			// discards this result.
			return nil, queryCtx.Err()
		}
		s.log.Warnf("Failed to search users for %q: %+v", term, err)
		return nil, err
	}

	return users, nil
}
