package handler

import (
	"net/http"

	"clinic-admin/internal/access"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/delivery/http/middleware"
	"clinic-admin/pkg/response"
)

// PageHandler serves the bootstrap payload for page navigations: the page
// descriptor plus the navigation menu scoped to the current role. The route
// guard has already decided the navigation is allowed by the time these run.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// ShowPage resolves the requested path against the route registry.
func (h *PageHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	role := ""
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		role = sess.Role
	}

	page := &dto.PageResponse{
		Path:         r.URL.Path,
		DefaultRoute: access.DefaultRouteForRole(role),
	}

	for _, d := range access.Routes() {
		if d.Path == r.URL.Path {
			page.Label = d.Label
			page.Icon = d.Icon
			break
		}
	}

	for _, d := range access.RoutesForRole(role) {
		if !d.Protected {
			continue
		}
		page.Nav = append(page.Nav, dto.NavItem{
			Path:  d.Path,
			Label: d.Label,
			Icon:  d.Icon,
		})
	}

	response.Success(w, http.StatusOK, "Page resolved successfully", page)
}
