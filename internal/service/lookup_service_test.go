package service

import (
	"context"
	"testing"

	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// lookupStubUserRepo blocks in SearchActive until released or its query
// context is canceled, so tests can hold a query in flight.
type lookupStubUserRepo struct {
	started chan string
	release chan struct{}
	users   []entity.User
}

func (s *lookupStubUserRepo) SearchActive(db *gorm.DB, term string, limit int) ([]entity.User, error) {
	s.started <- term
	select {
	case <-db.Statement.Context.Done():
		return nil, db.Statement.Context.Err()
	case <-s.release:
		return s.users, nil
	}
}

func (s *lookupStubUserRepo) Create(db *gorm.DB, user *entity.User) error { return nil }

func (s *lookupStubUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	return nil, nil
}

func (s *lookupStubUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return nil, nil
}

func (s *lookupStubUserRepo) Update(db *gorm.DB, user *entity.User) error { return nil }

func (s *lookupStubUserRepo) List(db *gorm.DB, q repository.ListQuery) ([]entity.User, int64, error) {
	return nil, 0, nil
}

func newTestLookupService(repo repository.UserRepository) LookupService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	// The stub never executes SQL, so a connection-less handle is enough.
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db, Context: context.Background()}
	return NewLookupService(db, log, repo)
}

type lookupResult struct {
	users []entity.User
	err   error
}

func TestSearchUsersDoesNotCancelAcrossUsers(t *testing.T) {
	repo := &lookupStubUserRepo{
		started: make(chan string),
		release: make(chan struct{}),
		users:   []entity.User{{FullName: "Dr. Ahmed"}},
	}
	svc := newTestLookupService(repo)

	userA := uuid.New()
	userB := uuid.New()

	bDone := make(chan lookupResult, 1)
	go func() {
		users, err := svc.SearchUsers(context.Background(), userB, "slow")
		bDone <- lookupResult{users, err}
	}()
	<-repo.started

	aDone := make(chan lookupResult, 1)
	go func() {
		users, err := svc.SearchUsers(context.Background(), userA, "fast")
		aDone <- lookupResult{users, err}
	}()
	<-repo.started

	close(repo.release)

	b := <-bDone
	require.NoError(t, b.err, "one user's keystroke must not cancel another user's lookup")
	assert.Len(t, b.users, 1)

	a := <-aDone
	require.NoError(t, a.err)
	assert.Len(t, a.users, 1)
}

func TestSearchUsersSupersedesOwnPreviousQuery(t *testing.T) {
	repo := &lookupStubUserRepo{
		started: make(chan string),
		release: make(chan struct{}),
		users:   []entity.User{{FullName: "Dr. Ahmed"}},
	}
	svc := newTestLookupService(repo)

	userID := uuid.New()

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.SearchUsers(context.Background(), userID, "ah")
		firstDone <- err
	}()
	<-repo.started

	secondDone := make(chan lookupResult, 1)
	go func() {
		users, err := svc.SearchUsers(context.Background(), userID, "ahmed")
		secondDone <- lookupResult{users, err}
	}()
	<-repo.started

	assert.ErrorIs(t, <-firstDone, context.Canceled)

	close(repo.release)
	second := <-secondDone
	require.NoError(t, second.err)
	assert.Len(t, second.users, 1)
}

func TestSearchUsersEmptyTermShortCircuits(t *testing.T) {
	svc := newTestLookupService(&lookupStubUserRepo{})

	users, err := svc.SearchUsers(context.Background(), uuid.New(), "")
	require.NoError(t, err)
	assert.Nil(t, users)
}
