package impl

import (
	"context"
	"testing"
	"time"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/service"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	users    *fakeUserRepo
	sessions *fakeRefreshTokenRepo
	tokens   *fakeTokenService
	identity *fakeIdentityService
}

func createTestAuthService(t *testing.T, identity *fakeIdentityService) authServiceFixtures {
	t.Helper()

	users := newFakeUserRepo()
	sessions := newFakeRefreshTokenRepo()
	tokens := &fakeTokenService{}

	svc := NewAuthService(users, sessions, tokens, fakeHasher{}, identity, newDiscardLogger())

	return authServiceFixtures{
		service:  svc,
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		identity: identity,
	}
}

func TestAuthService_Login_AutoRegistersUnknownUser(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{
		user: &service.IdentityUser{ExternalID: "ext-42", Name: "Zhang San"},
	})

	result, err := fx.service.Login(context.Background(), "one-time-code")

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, "Zhang San", result.User.Name)
	assert.Equal(t, "ext-42", result.User.ExternalID)
	assert.Equal(t, entity.RoleUser.String(), result.User.Role)
	assert.NotZero(t, result.User.LastLoginTime)
	assert.Equal(t, "Bearer", result.Token.TokenType)
	assert.NotEmpty(t, result.Token.AccessToken)
	assert.NotEmpty(t, result.Token.RefreshToken)

	// The session hash must be persisted server-side.
	assert.Len(t, fx.sessions.byHash, 1)
}

func TestAuthService_Login_ExistingUserUpdatesLoginTime(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{
		user: &service.IdentityUser{ExternalID: "ext-42", Name: "Zhang San"},
	})
	existing := fx.users.add(&entity.User{
		ExternalID:    "ext-42",
		Name:          "Zhang San",
		Role:          entity.RoleAdmin,
		LastLoginTime: 1000,
	})

	result, err := fx.service.Login(context.Background(), "one-time-code")

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, existing.ID, result.User.ID)
	assert.Equal(t, entity.RoleAdmin.String(), result.User.Role)
	assert.Greater(t, fx.users.byID[existing.ID].LastLoginTime, int64(1000))
}

func TestAuthService_Login_UpstreamFailurePassesThrough(t *testing.T) {
	upstream := domainerrors.NewUpstreamError("gettoken", assert.AnError)
	fx := createTestAuthService(t, &fakeIdentityService{err: upstream})

	_, err := fx.service.Login(context.Background(), "one-time-code")

	var appErr *domainerrors.UpstreamError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "gettoken", appErr.Stage())
}

func TestAuthService_Login_EmptyCodeRejected(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{})

	_, err := fx.service.Login(context.Background(), "")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{})
	fx.users.add(&entity.User{
		Username:     "zhangsan",
		Name:         "Zhang San",
		PasswordHash: "hashed:correct-horse",
		Role:         entity.RoleUser,
	})

	result, err := fx.service.SignIn(context.Background(), "zhangsan", "correct-horse")

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, "zhangsan", result.User.Username)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{})
	fx.users.add(&entity.User{
		Username:     "zhangsan",
		Name:         "Zhang San",
		PasswordHash: "hashed:correct-horse",
	})

	_, err := fx.service.SignIn(context.Background(), "zhangsan", "wrong")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
}

func TestAuthService_SignIn_UnknownUserSameError(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{})

	_, err := fx.service.SignIn(context.Background(), "nobody", "whatever")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
}

func TestAuthService_SignIn_NoLocalCredential(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{})
	fx.users.add(&entity.User{
		Username: "zhangsan",
		Name:     "Zhang San",
		// Account was auto-registered, never set a password.
	})

	_, err := fx.service.SignIn(context.Background(), "zhangsan", "")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	_, err = fx.service.SignIn(context.Background(), "zhangsan", "anything")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{
		user: &service.IdentityUser{ExternalID: "ext-42", Name: "Zhang San"},
	})

	login, err := fx.service.Login(context.Background(), "one-time-code")
	require.NoError(t, err)

	refreshed, err := fx.service.Refresh(context.Background(), "ext-42", login.Token.RefreshToken)

	require.NoError(t, err)
	assert.NotEqual(t, login.Token.RefreshToken, refreshed.Token.RefreshToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
	// The old session is gone, a new one was stored.
	assert.Len(t, fx.sessions.byHash, 1)
}

func TestAuthService_Refresh_SecondRedemptionFails(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{
		user: &service.IdentityUser{ExternalID: "ext-42", Name: "Zhang San"},
	})

	login, err := fx.service.Login(context.Background(), "one-time-code")
	require.NoError(t, err)

	_, err = fx.service.Refresh(context.Background(), "ext-42", login.Token.RefreshToken)
	require.NoError(t, err)

	_, err = fx.service.Refresh(context.Background(), "ext-42", login.Token.RefreshToken)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REFRESH_TOKEN_INVALID", appErr.ErrorCode())
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{})
	user := fx.users.add(&entity.User{ExternalID: "ext-42", Name: "Zhang San"})

	raw, hash, err := fx.tokens.GenerateRefreshToken(user.ID)
	require.NoError(t, err)
	require.NoError(t, fx.sessions.Create(context.Background(), &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	_, err = fx.service.Refresh(context.Background(), "ext-42", raw)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REFRESH_TOKEN_INVALID", appErr.ErrorCode())
	// Consumption removed the row even though redemption failed.
	assert.Empty(t, fx.sessions.byHash)
}

func TestAuthService_Refresh_WrongIdentity(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{
		user: &service.IdentityUser{ExternalID: "ext-42", Name: "Zhang San"},
	})
	fx.users.add(&entity.User{ExternalID: "ext-other", Name: "Li Si"})

	login, err := fx.service.Login(context.Background(), "one-time-code")
	require.NoError(t, err)

	_, err = fx.service.Refresh(context.Background(), "ext-other", login.Token.RefreshToken)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REFRESH_TOKEN_INVALID", appErr.ErrorCode())
}

func TestAuthService_Logout_RevokesAllSessionsOfUser(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{
		user: &service.IdentityUser{ExternalID: "ext-42", Name: "Zhang San"},
	})
	other := fx.users.add(&entity.User{ExternalID: "ext-other", Name: "Li Si"})

	login, err := fx.service.Login(context.Background(), "one-time-code")
	require.NoError(t, err)
	require.NoError(t, fx.sessions.Create(context.Background(), &entity.RefreshToken{
		UserID:    other.ID,
		TokenHash: "other-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, fx.service.Logout(context.Background(), login.User.ID))

	// Only the other user's session survives.
	assert.Len(t, fx.sessions.byHash, 1)
	assert.Contains(t, fx.sessions.byHash, "other-hash")
}

func TestAuthService_Login_SweepsExpiredSessions(t *testing.T) {
	fx := createTestAuthService(t, &fakeIdentityService{
		user: &service.IdentityUser{ExternalID: "ext-42", Name: "Zhang San"},
	})
	stale := fx.users.add(&entity.User{ExternalID: "ext-other", Name: "Li Si"})
	require.NoError(t, fx.sessions.Create(context.Background(), &entity.RefreshToken{
		UserID:    stale.ID,
		TokenHash: "stale-hash",
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	_, err := fx.service.Login(context.Background(), "one-time-code")
	require.NoError(t, err)

	// The expired row is gone; only the fresh session remains.
	assert.NotContains(t, fx.sessions.byHash, "stale-hash")
	assert.Len(t, fx.sessions.byHash, 1)
}
