package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Princessdada/Blogging-API/internal/domain"
	"github.com/Princessdada/Blogging-API/internal/util"
	"github.com/Princessdada/Blogging-API/pkg/token"
)

func newTestAuthService(users domain.UserRepository) (domain.AuthService, token.Manager) {
	tm := token.NewManager("test-secret", time.Hour, nil)
	return NewAuthService(users, tm, zap.NewNop()), tm
}

func TestSignup_TokenMatchesUser(t *testing.T) {
	users := newFakeUserRepo()
	svc, tm := newTestAuthService(users)

	result, err := svc.Signup(domain.SignupRequest{
		FirstName: "princess",
		LastName:  "dada",
		Email:     "princess@example.com",
		Password:  "123456",
	})
	require.NoError(t, err)
	require.NotNil(t, result.User)

	claims, err := tm.Verify(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "princess@example.com", claims.Email)
}

func TestSignup_HashesPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newTestAuthService(users)

	result, err := svc.Signup(domain.SignupRequest{
		FirstName: "a", LastName: "b",
		Email: "a@example.com", Password: "123456",
	})
	require.NoError(t, err)

	stored := users.users[result.User.ID]
	assert.NotEqual(t, "123456", stored.Password)
	assert.NoError(t, util.CheckPassword(stored.Password, "123456"))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newTestAuthService(users)

	req := domain.SignupRequest{
		FirstName: "a", LastName: "b",
		Email: "dup@example.com", Password: "123456",
	}
	_, err := svc.Signup(req)
	require.NoError(t, err)

	_, err = svc.Signup(req)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Len(t, users.users, 1)
}

func TestLogin_Success(t *testing.T) {
	users := newFakeUserRepo()
	svc, tm := newTestAuthService(users)

	_, err := svc.Signup(domain.SignupRequest{
		FirstName: "a", LastName: "b",
		Email: "a@example.com", Password: "123456",
	})
	require.NoError(t, err)

	result, err := svc.Login("a@example.com", "123456")
	require.NoError(t, err)

	claims, err := tm.Verify(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newTestAuthService(users)

	_, err := svc.Signup(domain.SignupRequest{
		FirstName: "a", LastName: "b",
		Email: "a@example.com", Password: "123456",
	})
	require.NoError(t, err)

	_, wrongPassword := svc.Login("a@example.com", "654321")
	_, unknownUser := svc.Login("nobody@example.com", "123456")

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogout_WithoutRedis(t *testing.T) {
	users := newFakeUserRepo()
	svc, tm := newTestAuthService(users)

	tok, err := tm.Issue(1, "a@example.com")
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Logout(tok), token.ErrRevocationUnavailable)
}
