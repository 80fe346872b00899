package access

import (
	"testing"

	"clinic-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestIsRouteProtected(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"login is public", PathLogin, false},
		{"dashboard is protected", PathDashboard, true},
		{"patients is protected", PathPatients, true},
		{"unregistered path fails closed", "/admin/unknown", true},
		{"empty path fails closed", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRouteProtected(tt.path))
		})
	}
}

func TestIsRouteAdminOnly(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"dashboard is admin only", PathDashboard, true},
		{"users is admin only", PathUsers, true},
		{"settings is admin only", PathSettings, true},
		{"patients is not admin only", PathPatients, false},
		// Unknown paths fail open here, unlike IsRouteProtected.
		{"unregistered path fails open", "/admin/unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRouteAdminOnly(tt.path))
		})
	}
}

func TestHasRouteAccess(t *testing.T) {
	tests := []struct {
		name string
		role string
		path string
		want bool
	}{
		{"missing role never has access", "", PathPatients, false},
		{"missing role denied on unregistered path", "", "/admin/patients/42", false},
		{"admin reaches dashboard", entity.RoleAdmin, PathDashboard, true},
		{"employee denied on dashboard", entity.RoleEmployee, PathDashboard, false},
		{"nurse reaches patients", entity.RoleNurse, PathPatients, true},
		{"nurse denied on record create", entity.RoleNurse, PathMedicalRecordsCreate, false},
		{"doctor reaches record create", entity.RoleDoctor, PathMedicalRecordsCreate, true},
		{"employee denied on static data", entity.RoleEmployee, PathStaticData, false},
		// Sub-routes without their own descriptor inherit access.
		{"employee reaches patient detail sub-route", entity.RoleEmployee, "/admin/patients/42", true},
		{"nurse reaches record edit sub-route", entity.RoleNurse, "/admin/medical-records/42/edit", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasRouteAccess(tt.role, tt.path))
		})
	}
}

// Admin-only and the roles set are independent gates: a descriptor whose
// roles set admits other roles is still admin-only, so callers must check
// IsRouteAdminOnly separately from HasRouteAccess.
func TestAdminOnlyIsIndependentOfRolesSet(t *testing.T) {
	orig := registry
	registry = append(Routes(), RouteDescriptor{
		Path:      "/admin/reports",
		Label:     "Reports",
		Icon:      "summarize",
		Roles:     []string{entity.RoleAdmin, entity.RoleEmployee},
		Protected: true,
		AdminOnly: true,
	})
	defer func() { registry = orig }()

	assert.True(t, IsRouteAdminOnly("/admin/reports"))
	assert.True(t, HasRouteAccess(entity.RoleEmployee, "/admin/reports"),
		"the roles set alone admits the employee; admin-only must be enforced on top of it")
}

// The registered-route contract: access equals roles-set membership for every
// descriptor, for every known role.
func TestHasRouteAccessMatchesRegistry(t *testing.T) {
	roles := []string{entity.RoleAdmin, entity.RoleEmployee, entity.RoleDoctor, entity.RoleNurse}
	for _, d := range Routes() {
		for _, role := range roles {
			assert.Equal(t, d.HasRole(role), HasRouteAccess(role, d.Path),
				"role %s on %s", role, d.Path)
		}
	}
}
