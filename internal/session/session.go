package session

import (
	"encoding/json"

	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
)

// Session is the canonical authenticated principal. It is the sole input to
// every access-control decision; nothing downstream re-derives the role from
// raw payloads.
type Session struct {
	UserID      uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
}

// Authenticated reports whether the session carries a usable role.
func (s *Session) Authenticated() bool {
	return s != nil && s.Role != ""
}

// FromUser builds a session from a freshly loaded user row.
func FromUser(u *entity.User) *Session {
	if u == nil {
		return nil
	}
	return &Session{
		UserID:      u.ID,
		Role:        normalizeRole(u.RoleCode()),
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}

// FromPayload normalizes a cached profile payload into a session.
//
// Two payload shapes exist in the wild: the previous portal release nested
// the profile under a "user" key with the role code on the inner object,
// while current releases write the fields flat. Both resolve here, once;
// an unrecognized or missing role code yields a session with no role, which
// the guard treats as unauthenticated.
func FromPayload(raw []byte) *Session {
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	// Legacy shape: everything lives under "user".
	if inner, ok := payload["user"].(map[string]interface{}); ok {
		payload = inner
	}

	s := &Session{
		Role:        normalizeRole(stringField(payload, "role")),
		FullName:    stringField(payload, "full_name"),
		Email:       stringField(payload, "email"),
		PhoneNumber: stringField(payload, "phone_number"),
	}
	if id, err := uuid.Parse(stringField(payload, "id")); err == nil {
		s.UserID = id
	}
	return s
}

func stringField(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

// normalizeRole maps a raw role code to the canonical enum; anything
// unrecognized resolves to "no role".
func normalizeRole(code string) string {
	switch code {
	case entity.RoleAdmin, entity.RoleEmployee, entity.RoleDoctor, entity.RoleNurse:
		return code
	default:
		return ""
	}
}
