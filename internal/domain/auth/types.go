package auth

// Package auth contains domain-level types for the client session.
// It is pure and free of transport/adapter concerns.

// Role represents an application's authorization role.
// Keep string form to match the backend's wire representation.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is the identity record attached to an authenticated session.
// The backend returns it alongside the bearer token at login.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Roles    RoleList `json:"roles"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Roles.Contains(RoleAdmin)
}

// Session is the in-memory snapshot of the client's authentication state.
//
// Invariants:
//   - IsAuthenticated implies Token and User are both present.
//   - A logged-out session has an empty Token and a nil User.
//   - IsLoading is true only between process start and the completion of
//     the one-time bootstrap check.
type Session struct {
	Token           string
	User            *User
	IsAuthenticated bool
	IsLoading       bool
}
