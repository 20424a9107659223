package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRole(t *testing.T) {
	cases := []struct {
		name       string
		phone      string
		adminPhone string
		want       Role
	}{
		{"exact match", "0504111781", "0504111781", ROLE_ADMIN},
		{"dashes and spaces ignored", "050-411 1781", "0504111781", ROLE_ADMIN},
		{"admin phone formatted", "0504111781", "050-4111781", ROLE_ADMIN},
		{"different number", "0501234567", "0504111781", ROLE_STUDENT},
		{"no admin configured", "0504111781", "", ROLE_STUDENT},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveRole(User{Phone: tc.phone}, tc.adminPhone))
		})
	}
}

func TestMissingFields(t *testing.T) {
	assert.Equal(t, "name", User{Name: "  ", Phone: "0501234567"}.MissingFields())
	assert.Equal(t, "phone", User{Name: "Dana"}.MissingFields())
	assert.Equal(t, "", User{Name: "Dana", Phone: "0501234567"}.MissingFields())
}

func TestWithRoleKeepsUser(t *testing.T) {
	u := User{ID: 4, Name: "Dana", Phone: "0504111781"}
	got := u.WithRole("0504111781")
	assert.Equal(t, u, got.User)
	assert.Equal(t, ROLE_ADMIN, got.Role)
}
