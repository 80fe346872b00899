package access

// lookup returns the exact descriptor for path, if registered.
func lookup(path string) (RouteDescriptor, bool) {
	for _, d := range registry {
		if d.Path == path {
			return d, true
		}
	}
	return RouteDescriptor{}, false
}

// IsRouteProtected reports whether path requires an authenticated session.
// Unregistered paths default to protected (fail-closed).
func IsRouteProtected(path string) bool {
	d, ok := lookup(path)
	if !ok {
		return true
	}
	return d.Protected
}

// IsRouteAdminOnly reports whether path requires the admin role.
// Unregistered paths default to false. Note the asymmetry with
// IsRouteProtected: this predicate fails open on unknown paths.
func IsRouteAdminOnly(path string) bool {
	d, ok := lookup(path)
	if !ok {
		return false
	}
	return d.AdminOnly
}

// HasRouteAccess reports whether role may reach path. A missing role never
// has access. Paths without an exact descriptor (detail and edit sub-pages)
// inherit access from their parent list page and are reachable by any
// authenticated role.
func HasRouteAccess(role, path string) bool {
	if role == "" {
		return false
	}
	d, ok := lookup(path)
	if !ok {
		return true
	}
	return d.HasRole(role)
}
