package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutritrack/nutritrack/internal/api"
	domainauth "github.com/nutritrack/nutritrack/internal/domain/auth"
	mocksession "github.com/nutritrack/nutritrack/internal/mocks/session"
	"github.com/nutritrack/nutritrack/internal/session"
)

type fakeAuthAPI struct {
	loginResult *api.LoginResult
	loginErr    error
	loginCalls  int

	registerMsg string
	registerErr error
}

func (f *fakeAuthAPI) Login(_ context.Context, username, password string) (*api.LoginResult, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeAuthAPI) Register(_ context.Context, _ api.RegisterInput) (string, error) {
	return f.registerMsg, f.registerErr
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newAuthFixture(fake *fakeAuthAPI) (*AuthService, *session.Store, *mocksession.MemoryTokenBacking) {
	backing := mocksession.NewMemoryTokenBacking()
	store := session.NewStore(backing, nil)
	svc := NewAuthService(AuthServiceOptions{
		API:     fake,
		Store:   store,
		Backing: backing,
	})
	return svc, store, backing
}

func TestAuthServiceLoginStoresSession(t *testing.T) {
	user := &domainauth.User{ID: "u1", Username: "alice", Roles: domainauth.RoleList{domainauth.RoleUser}}
	fake := &fakeAuthAPI{loginResult: &api.LoginResult{Token: "tok-123", User: user}}
	svc, store, backing := newAuthFixture(fake)

	got, err := svc.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	snap := store.Snapshot()
	assert.True(t, snap.IsAuthenticated)
	assert.Equal(t, "tok-123", snap.Token)
	assert.Equal(t, "tok-123", backing.Current())
}

func TestAuthServiceLoginFailureLeavesSessionEmpty(t *testing.T) {
	fake := &fakeAuthAPI{loginErr: errors.New("bad credentials")}
	svc, store, backing := newAuthFixture(fake)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)

	snap := store.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.Empty(t, snap.Token)
	assert.Empty(t, backing.Current())
}

func TestAuthServiceRegister(t *testing.T) {
	fake := &fakeAuthAPI{registerMsg: "account created"}
	svc, _, _ := newAuthFixture(fake)

	msg, err := svc.Register(context.Background(), api.RegisterInput{Username: "bob", Password: "pw", Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "account created", msg)
}

func TestAuthServiceLogoutClearsBacking(t *testing.T) {
	user := &domainauth.User{Username: "alice"}
	fake := &fakeAuthAPI{loginResult: &api.LoginResult{Token: "tok", User: user}}
	svc, store, backing := newAuthFixture(fake)

	_, err := svc.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	svc.Logout()

	snap := store.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)
	assert.Empty(t, backing.Current())
}

func TestBootstrapWithStoredJWT(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":      "u42",
		"username": "carol",
		"roles":    []string{"ADMIN", "USER"},
	})
	svc, store, backing := newAuthFixture(&fakeAuthAPI{})
	backing.Seed(token)

	svc.Bootstrap(context.Background())

	snap := store.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.True(t, snap.IsAuthenticated)
	assert.Equal(t, token, snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, "carol", snap.User.Username)
	assert.Equal(t, "u42", snap.User.ID)
	assert.True(t, snap.User.IsAdmin())
}

func TestBootstrapWithOpaqueToken(t *testing.T) {
	svc, store, backing := newAuthFixture(&fakeAuthAPI{})
	backing.Seed("not-a-jwt")

	svc.Bootstrap(context.Background())

	snap := store.Snapshot()
	assert.True(t, snap.IsAuthenticated)
	require.NotNil(t, snap.User)
	assert.Equal(t, "user", snap.User.Username)
	assert.Equal(t, domainauth.RoleList{domainauth.RoleUser}, snap.User.Roles)
	assert.False(t, snap.User.IsAdmin())
}

func TestBootstrapWithEmptySlot(t *testing.T) {
	svc, store, _ := newAuthFixture(&fakeAuthAPI{})

	svc.Bootstrap(context.Background())

	snap := store.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)
}

func TestBootstrapLoadFailureStillClearsLoading(t *testing.T) {
	svc, store, backing := newAuthFixture(&fakeAuthAPI{})
	backing.LoadErr = errors.New("disk gone")

	svc.Bootstrap(context.Background())

	snap := store.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.False(t, snap.IsAuthenticated)
}

func TestBootstrapRunsOnce(t *testing.T) {
	svc, store, backing := newAuthFixture(&fakeAuthAPI{})
	backing.Seed("tok")

	svc.Bootstrap(context.Background())
	require.True(t, store.Snapshot().IsAuthenticated)

	// A later logout must not be undone by a repeat bootstrap.
	svc.Logout()
	svc.Bootstrap(context.Background())

	snap := store.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.Equal(t, 1, backing.LoadCalls)
}

func TestIdentityFromTokenDefaultsRoles(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "u7"})
	user := identityFromToken(token)
	assert.Equal(t, "u7", user.ID)
	assert.Equal(t, domainauth.RoleList{domainauth.RoleUser}, user.Roles)
}
