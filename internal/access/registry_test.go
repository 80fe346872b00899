package access

import (
	"testing"

	"clinic-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestValidateRejectsAdminOnlyWithoutAdminRole(t *testing.T) {
	orig := registry
	defer func() { registry = orig }()

	registry = []RouteDescriptor{
		{Path: "/admin/broken", Label: "Broken", Roles: []string{entity.RoleEmployee}, Protected: true, AdminOnly: true},
	}
	assert.Error(t, Validate())
}

func TestValidateRejectsDuplicatePaths(t *testing.T) {
	orig := registry
	defer func() { registry = orig }()

	registry = []RouteDescriptor{
		{Path: PathPatients, Label: "Patients", Roles: allRoles, Protected: true},
		{Path: PathPatients, Label: "Patients Again", Roles: allRoles, Protected: true},
	}
	assert.Error(t, Validate())
}

func TestRoutesForRole(t *testing.T) {
	t.Run("missing role gets nothing", func(t *testing.T) {
		assert.Empty(t, RoutesForRole(""))
	})

	t.Run("admin sees every route", func(t *testing.T) {
		assert.Len(t, RoutesForRole(entity.RoleAdmin), len(Routes()))
	})

	t.Run("employee routes in declaration order", func(t *testing.T) {
		routes := RoutesForRole(entity.RoleEmployee)
		require.NotEmpty(t, routes)

		var paths []string
		for _, d := range routes {
			paths = append(paths, d.Path)
		}
		assert.Equal(t, []string{PathLogin, PathPatients, PathMedicalRecords, PathTransfers, PathProfile}, paths)
	})
}

func TestDefaultRouteForRole(t *testing.T) {
	assert.Equal(t, PathLogin, DefaultRouteForRole(""))
	assert.Equal(t, PathDashboard, DefaultRouteForRole(entity.RoleAdmin))
	assert.Equal(t, PathPatients, DefaultRouteForRole(entity.RoleEmployee))
	assert.Equal(t, PathPatients, DefaultRouteForRole(entity.RoleDoctor))
	assert.Equal(t, PathPatients, DefaultRouteForRole(entity.RoleNurse))
}
