package middleware

import (
	"context"
	"net/http"
	"net/url"

	"clinic-admin/internal/access"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/service"
	"clinic-admin/internal/session"
	"clinic-admin/pkg/jwt"

	"github.com/sirupsen/logrus"
)

const SessionKey contextKey = "session"

// CredentialResolver turns request credentials into token claims. Satisfied
// by AuthMiddleware.
type CredentialResolver interface {
	Resolve(r *http.Request) (*jwt.Claims, error)
}

// RouteGuard gates page navigations. Every guarded request moves through a
// short state machine: it starts in a checking state while the profile is
// refreshed, then resolves to exactly one of
//
//   - authorized: the handler runs with the session in context
//   - redirect to login: unauthenticated on a protected path, with the
//     intended path preserved in the "from" query parameter
//   - redirect to the role's default route: authenticated but not allowed
//
// The profile refresh always completes before any access decision is taken,
// so a navigation issued right after a role change is judged against the new
// role. Refresh failures are swallowed: the cached session, if any, decides.
type RouteGuard struct {
	log            *logrus.Logger
	credentials    CredentialResolver
	sessionService service.SessionService
	staticService  service.StaticDataService
}

func NewRouteGuard(
	log *logrus.Logger,
	credentials CredentialResolver,
	sessionService service.SessionService,
	staticService service.StaticDataService,
) *RouteGuard {
	return &RouteGuard{
		log:            log,
		credentials:    credentials,
		sessionService: sessionService,
		staticService:  staticService,
	}
}

func (g *RouteGuard) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		sess := g.resolveSession(r)

		// Reference data is warmed on every guard entry; concurrent entries
		// collapse onto one refresh. A failure never blocks navigation.
		if err := g.staticService.Warm(r.Context()); err != nil {
			g.log.Warnf("Failed to warm static data on navigation: %+v", err)
		}

		if !access.IsRouteProtected(path) {
			// An authenticated user has no business on the login page.
			if path == access.PathLogin && sess.Authenticated() {
				g.redirect(w, r, access.DefaultRouteForRole(sess.Role))
				return
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
			return
		}

		if !sess.Authenticated() {
			g.redirectLogin(w, r, path)
			return
		}

		// Admin-only is an absolute gate, checked before the per-role set:
		// it holds even for a descriptor that also lists other roles.
		if access.IsRouteAdminOnly(path) && sess.Role != entity.RoleAdmin {
			g.redirect(w, r, access.DefaultRouteForRole(sess.Role))
			return
		}

		if !access.HasRouteAccess(sess.Role, path) {
			g.redirect(w, r, access.DefaultRouteForRole(sess.Role))
			return
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
	})
}

// resolveSession turns request credentials into a session. The refresh runs
// strictly before the caller's access decision; when it fails the cached
// payload is used instead, and when both fail the navigation proceeds
// unauthenticated.
func (g *RouteGuard) resolveSession(r *http.Request) *session.Session {
	claims, err := g.credentials.Resolve(r)
	if err != nil {
		return nil
	}

	sess, err := g.sessionService.Refresh(r.Context(), claims.UserID)
	if err != nil {
		g.log.Warnf("Failed to refresh session for %s: %+v", claims.UserID, err)
		sess, err = g.sessionService.Cached(r.Context(), claims.UserID)
		if err != nil {
			return nil
		}
	}
	return sess
}

func (g *RouteGuard) redirectLogin(w http.ResponseWriter, r *http.Request, from string) {
	target := access.PathLogin
	if from != "" && from != access.PathLogin {
		target += "?from=" + url.QueryEscape(from)
	}
	g.redirect(w, r, target)
}

func (g *RouteGuard) redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusFound)
}

func withSession(ctx context.Context, sess *session.Session) context.Context {
	if sess == nil {
		return ctx
	}
	return context.WithValue(ctx, SessionKey, sess)
}

// GetSessionFromContext extracts the guard-resolved session from context
func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*session.Session)
	return sess, ok
}
