package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-admin/internal/access"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/session"
	"clinic-admin/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	claims *jwt.Claims
	err    error
}

func (f *fakeResolver) Resolve(r *http.Request) (*jwt.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

type fakeSessionService struct {
	refreshed  *session.Session
	refreshErr error
	cached     *session.Session
	cachedErr  error

	refreshCalls int
}

func (f *fakeSessionService) Refresh(ctx context.Context, userID uuid.UUID) (*session.Session, error) {
	f.refreshCalls++
	return f.refreshed, f.refreshErr
}

func (f *fakeSessionService) Cached(ctx context.Context, userID uuid.UUID) (*session.Session, error) {
	return f.cached, f.cachedErr
}

func (f *fakeSessionService) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return nil
}

type fakeStaticService struct {
	warmCalls int
	warmErr   error
}

func (f *fakeStaticService) GetCategory(ctx context.Context, category string) ([]entity.StaticData, error) {
	return nil, nil
}

func (f *fakeStaticService) Warm(ctx context.Context) error {
	f.warmCalls++
	return f.warmErr
}

func (f *fakeStaticService) Resync(ctx context.Context) error { return nil }

func (f *fakeStaticService) InvalidateCategory(ctx context.Context, category string) error {
	return nil
}

func newTestGuard(resolver *fakeResolver, sessions *fakeSessionService, statics *fakeStaticService) *RouteGuard {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewRouteGuard(log, resolver, sessions, statics)
}

func okHandler(served *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*served = true
		w.WriteHeader(http.StatusOK)
	})
}

func claimsFor(userID uuid.UUID) *jwt.Claims {
	return &jwt.Claims{UserID: userID, TokenType: jwt.AccessToken}
}

func sessionFor(role string) *session.Session {
	return &session.Session{UserID: uuid.New(), Role: role, FullName: "Test User"}
}

func TestGuardRedirectsAnonymousToLoginWithFrom(t *testing.T) {
	guard := newTestGuard(
		&fakeResolver{err: errors.New("no credentials")},
		&fakeSessionService{},
		&fakeStaticService{},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, access.PathTransfers, nil)

	served := false
	guard.Guard(okHandler(&served)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?from=%2Fadmin%2Ftransfers", rec.Header().Get("Location"))
	assert.False(t, served)
}

func TestGuardRedirectsUnknownProtectedPathToLogin(t *testing.T) {
	// Unregistered paths are protected by default.
	guard := newTestGuard(
		&fakeResolver{err: errors.New("no credentials")},
		&fakeSessionService{},
		&fakeStaticService{},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/unmapped", nil)

	served := false
	guard.Guard(okHandler(&served)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?from=%2Fadmin%2Funmapped", rec.Header().Get("Location"))
	assert.False(t, served)
}

func TestGuardServesLoginToAnonymous(t *testing.T) {
	guard := newTestGuard(
		&fakeResolver{err: errors.New("no credentials")},
		&fakeSessionService{},
		&fakeStaticService{},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, access.PathLogin, nil)

	served := false
	guard.Guard(okHandler(&served)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, served)
}

func TestGuardRedirectsAuthenticatedAwayFromLogin(t *testing.T) {
	userID := uuid.New()
	guard := newTestGuard(
		&fakeResolver{claims: claimsFor(userID)},
		&fakeSessionService{refreshed: sessionFor(entity.RoleEmployee)},
		&fakeStaticService{},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, access.PathLogin, nil)

	served := false
	guard.Guard(okHandler(&served)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, access.PathPatients, rec.Header().Get("Location"))
	assert.False(t, served)
}

func TestGuardRedirectsEmployeeFromAdminOnlyToDefault(t *testing.T) {
	userID := uuid.New()
	guard := newTestGuard(
		&fakeResolver{claims: claimsFor(userID)},
		&fakeSessionService{refreshed: sessionFor(entity.RoleEmployee)},
		&fakeStaticService{},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, access.PathUsers, nil)

	served := false
	guard.Guard(okHandler(&served)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, access.PathPatients, rec.Header().Get("Location"))
	assert.False(t, served)
}

func TestGuardBlocksNonAdminFromAdminOnlyRoute(t *testing.T) {
	userID := uuid.New()
	guard := newTestGuard(
		&fakeResolver{claims: claimsFor(userID)},
		&fakeSessionService{refreshed: sessionFor(entity.RoleNurse)},
		&fakeStaticService{},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, access.PathSettings, nil)

	served := false
	guard.Guard(okHandler(&served)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, access.PathPatients, rec.Header().Get("Location"))
	assert.False(t, served)
}

func TestGuardAuthorizesAdminAndInjectsSession(t *testing.T) {
	userID := uuid.New()
	sess := sessionFor(entity.RoleAdmin)
	sessions := &fakeSessionService{refreshed: sess}
	guard := newTestGuard(&fakeResolver{claims: claimsFor(userID)}, sessions, &fakeStaticService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, access.PathUsers, nil)

	var got *session.Session
	guard.Guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, entity.RoleAdmin, got.Role)
	assert.Equal(t, 1, sessions.refreshCalls, "profile refresh must run before the access decision")
}

func TestGuardFallsBackToCachedSessionOnRefreshFailure(t *testing.T) {
	userID := uuid.New()
	sessions := &fakeSessionService{
		refreshErr: errors.New("db down"),
		cached:     sessionFor(entity.RoleDoctor),
	}
	guard := newTestGuard(&fakeResolver{claims: claimsFor(userID)}, sessions, &fakeStaticService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, access.PathMedicalRecordsCreate, nil)

	served := false
	guard.Guard(okHandler(&served)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, served, "cached session should authorize when the refresh fails")
}

func TestGuardTreatsTotalSessionFailureAsAnonymous(t *testing.T) {
	userID := uuid.New()
	sessions := &fakeSessionService{
		refreshErr: errors.New("db down"),
		cachedErr:  errors.New("redis down"),
	}
	guard := newTestGuard(&fakeResolver{claims: claimsFor(userID)}, sessions, &fakeStaticService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, access.PathPatients, nil)

	served := false
	guard.Guard(okHandler(&served)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?from=%2Fadmin%2Fpatients", rec.Header().Get("Location"))
	assert.False(t, served)
}

func TestGuardWarmFailureDoesNotBlockNavigation(t *testing.T) {
	userID := uuid.New()
	statics := &fakeStaticService{warmErr: errors.New("redis down")}
	guard := newTestGuard(
		&fakeResolver{claims: claimsFor(userID)},
		&fakeSessionService{refreshed: sessionFor(entity.RoleNurse)},
		statics,
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, access.PathPatients, nil)

	served := false
	guard.Guard(okHandler(&served)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, served)
	assert.Equal(t, 1, statics.warmCalls)
}

func TestGuardSubRoutesInheritParentAccess(t *testing.T) {
	userID := uuid.New()
	guard := newTestGuard(
		&fakeResolver{claims: claimsFor(userID)},
		&fakeSessionService{refreshed: sessionFor(entity.RoleEmployee)},
		&fakeStaticService{},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, access.PathPatients+"/"+uuid.NewString(), nil)

	served := false
	guard.Guard(okHandler(&served)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, served)
}
