package access

import (
	"fmt"

	"clinic-admin/internal/domain/entity"
)

// Route paths for the admin area. The registry below is the single source
// of truth for which roles may reach which page.
const (
	PathLogin                = "/login"
	PathDashboard            = "/admin/dashboard"
	PathUsers                = "/admin/users"
	PathPatients             = "/admin/patients"
	PathMedicalRecords       = "/admin/medical-records"
	PathMedicalRecordsCreate = "/admin/medical-records/create"
	PathTransfers            = "/admin/transfers"
	PathStaticData           = "/admin/static-data"
	PathProfile              = "/admin/profile"
	PathSettings             = "/admin/settings"
)

// RouteDescriptor describes one navigable admin-area page.
type RouteDescriptor struct {
	Path      string
	Label     string
	Icon      string
	Roles     []string
	Protected bool
	AdminOnly bool
}

// HasRole reports whether the descriptor's roles set contains role.
func (d RouteDescriptor) HasRole(role string) bool {
	for _, r := range d.Roles {
		if r == role {
			return true
		}
	}
	return false
}

var allRoles = []string{entity.RoleAdmin, entity.RoleEmployee, entity.RoleDoctor, entity.RoleNurse}

// registry is static process-wide configuration; it is never mutated at runtime.
// Declaration order is the navigation order.
var registry = []RouteDescriptor{
	{Path: PathLogin, Label: "Login", Icon: "login", Roles: allRoles, Protected: false},
	{Path: PathDashboard, Label: "Dashboard", Icon: "dashboard", Roles: []string{entity.RoleAdmin}, Protected: true, AdminOnly: true},
	{Path: PathUsers, Label: "Users", Icon: "people", Roles: []string{entity.RoleAdmin}, Protected: true, AdminOnly: true},
	{Path: PathPatients, Label: "Patients", Icon: "personal_injury", Roles: allRoles, Protected: true},
	{Path: PathMedicalRecords, Label: "Medical Records", Icon: "clinical_notes", Roles: allRoles, Protected: true},
	{Path: PathMedicalRecordsCreate, Label: "New Medical Record", Icon: "note_add", Roles: []string{entity.RoleAdmin, entity.RoleDoctor}, Protected: true},
	{Path: PathTransfers, Label: "Transfers", Icon: "swap_horiz", Roles: allRoles, Protected: true},
	{Path: PathStaticData, Label: "Static Data", Icon: "category", Roles: []string{entity.RoleAdmin}, Protected: true, AdminOnly: true},
	{Path: PathProfile, Label: "Profile", Icon: "account_circle", Roles: allRoles, Protected: true},
	{Path: PathSettings, Label: "Settings", Icon: "settings", Roles: []string{entity.RoleAdmin}, Protected: true, AdminOnly: true},
}

// Routes returns the full registry in declaration order.
func Routes() []RouteDescriptor {
	out := make([]RouteDescriptor, len(registry))
	copy(out, registry)
	return out
}

// RoutesForRole returns, in declaration order, every descriptor whose roles
// set contains role. A missing role yields an empty sequence.
func RoutesForRole(role string) []RouteDescriptor {
	if role == "" {
		return nil
	}
	var out []RouteDescriptor
	for _, d := range registry {
		if d.HasRole(role) {
			out = append(out, d)
		}
	}
	return out
}

// DefaultRouteForRole returns the landing path for a role. Admins land on the
// dashboard, every other known role on the patients list, and a missing role
// goes back to login.
func DefaultRouteForRole(role string) string {
	switch role {
	case "":
		return PathLogin
	case entity.RoleAdmin:
		return PathDashboard
	default:
		return PathPatients
	}
}

// Validate checks registry consistency at startup. An adminOnly descriptor
// whose roles set excludes the admin role would be unreachable even by
// admins, so bootstrap refuses to start on such a registry.
func Validate() error {
	seen := make(map[string]bool, len(registry))
	for _, d := range registry {
		if seen[d.Path] {
			return fmt.Errorf("access: duplicate route descriptor for %s", d.Path)
		}
		seen[d.Path] = true

		if d.AdminOnly && !d.HasRole(entity.RoleAdmin) {
			return fmt.Errorf("access: route %s is admin-only but admin is not in its roles set", d.Path)
		}
	}
	return nil
}
