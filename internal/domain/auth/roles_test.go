package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRoles(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected RoleList
	}{
		{
			name:     "nil input",
			input:    nil,
			expected: nil,
		},
		{
			name:     "string slice",
			input:    []string{"ADMIN", "USER"},
			expected: RoleList{RoleAdmin, RoleUser},
		},
		{
			name:     "any slice of strings",
			input:    []any{"ADMIN", "USER"},
			expected: RoleList{RoleAdmin, RoleUser},
		},
		{
			name:     "any slice with non-string entries dropped",
			input:    []any{"ADMIN", 42, nil, "USER"},
			expected: RoleList{RoleAdmin, RoleUser},
		},
		{
			name:     "bare string treated as single role",
			input:    "USER",
			expected: RoleList{RoleUser},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "non-list shape",
			input:    map[string]any{"role": "ADMIN"},
			expected: nil,
		},
		{
			name:     "number",
			input:    7.0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRoles(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRoleListUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected RoleList
	}{
		{name: "list of strings", payload: `{"roles":["ADMIN"]}`, expected: RoleList{RoleAdmin}},
		{name: "null", payload: `{"roles":null}`, expected: nil},
		{name: "absent", payload: `{}`, expected: nil},
		{name: "bare string", payload: `{"roles":"USER"}`, expected: RoleList{RoleUser}},
		{name: "object shape", payload: `{"roles":{"name":"ADMIN"}}`, expected: nil},
		{name: "number shape", payload: `{"roles":5}`, expected: nil},
		{name: "mixed list", payload: `{"roles":["ADMIN",1,false]}`, expected: RoleList{RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var user User
			// Malformed shapes must never surface as decode errors.
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &user))
			assert.Equal(t, tt.expected, user.Roles)
		})
	}
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, User{Roles: RoleList{RoleUser, RoleAdmin}}.IsAdmin())
	assert.False(t, User{Roles: RoleList{RoleUser}}.IsAdmin())
	assert.False(t, User{}.IsAdmin())
}
