package session

import (
	"testing"

	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPayloadFlatShape(t *testing.T) {
	id := uuid.New()
	raw := []byte(`{"id":"` + id.String() + `","role":"doctor","full_name":"Dr. Huda","email":"huda@clinic.test","phone_number":"0501234567"}`)

	s := FromPayload(raw)
	require.NotNil(t, s)
	assert.Equal(t, id, s.UserID)
	assert.Equal(t, entity.RoleDoctor, s.Role)
	assert.Equal(t, "Dr. Huda", s.FullName)
	assert.True(t, s.Authenticated())
}

func TestFromPayloadNestedShape(t *testing.T) {
	id := uuid.New()
	raw := []byte(`{"user":{"id":"` + id.String() + `","role":"employee","full_name":"Sara","email":"sara@clinic.test"}}`)

	s := FromPayload(raw)
	require.NotNil(t, s)
	assert.Equal(t, id, s.UserID)
	assert.Equal(t, entity.RoleEmployee, s.Role)
	assert.True(t, s.Authenticated())
}

func TestFromPayloadUnknownRoleResolvesToNoRole(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unrecognized code", `{"role":"superuser","full_name":"X"}`},
		{"missing role", `{"full_name":"X"}`},
		{"nested missing role", `{"user":{"full_name":"X"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromPayload([]byte(tt.raw))
			require.NotNil(t, s)
			assert.Empty(t, s.Role)
			assert.False(t, s.Authenticated())
		})
	}
}

func TestFromPayloadInvalidJSON(t *testing.T) {
	assert.Nil(t, FromPayload([]byte("not json")))
	assert.False(t, FromPayload([]byte("not json")).Authenticated())
}

func TestFromUser(t *testing.T) {
	u := &entity.User{
		ID:       uuid.New(),
		RoleID:   entity.RoleIDNurse,
		Email:    "nura@clinic.test",
		FullName: "Nura",
	}

	s := FromUser(u)
	require.NotNil(t, s)
	assert.Equal(t, entity.RoleNurse, s.Role)

	assert.Nil(t, FromUser(nil))
}
