package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/service"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	users    repository.UserRepository
	sessions repository.RefreshTokenRepository
	tokens   service.TokenService
	hasher   service.PasswordHasher
	identity service.IdentityService
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	users repository.UserRepository,
	sessions repository.RefreshTokenRepository,
	tokens service.TokenService,
	hasher service.PasswordHasher,
	identity service.IdentityService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		hasher:   hasher,
		identity: identity,
		logger:   logger,
	}
}

// Login exchanges the external provider's one-time auth code for a session.
// Unknown external ids are auto-registered with the provider's display name.
func (srv *authService) Login(ctx context.Context, authCode string) (*usecase.AuthResult, error) {
	if authCode == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("authCode is required")
	}

	resolved, err := srv.identity.ResolveCode(ctx, authCode)
	if err != nil {
		// Upstream failures carry their own typed error; pass them through.
		return nil, err
	}

	created := false
	user, err := srv.users.FindByExternalID(ctx, resolved.ExternalID)
	switch {
	case err == nil:
		user.LastLoginTime = time.Now().Unix()
		if err := srv.users.Update(ctx, &entity.User{ID: user.ID, LastLoginTime: user.LastLoginTime}); err != nil {
			return nil, errors.Wrap(err, "failed to record login time")
		}
	case errors.Is(err, repository.ErrUserNotFound):
		user = &entity.User{
			ExternalID:    resolved.ExternalID,
			Name:          resolved.Name,
			Role:          entity.RoleUser,
			LastLoginTime: time.Now().Unix(),
		}
		if err := srv.users.Create(ctx, user); err != nil {
			return nil, err
		}
		created = true
		srv.logger.Info("auto-registered user on first login",
			slog.String("userID", user.ID.String()),
			slog.String("name", user.Name))
	default:
		return nil, errors.Wrap(err, "failed to look up user by external id")
	}

	return srv.issueSession(ctx, user, created)
}

// SignIn authenticates a local username/password credential. The error for a
// missing account and a wrong password is the same on purpose.
func (srv *authService) SignIn(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
	if username == "" || password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}

	user, err := srv.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid credentials")
		}

		return nil, errors.Wrap(err, "failed to look up user by username")
	}

	if user.PasswordHash == "" || !srv.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid credentials")
	}

	user.LastLoginTime = time.Now().Unix()
	if err := srv.users.Update(ctx, &entity.User{ID: user.ID, LastLoginTime: user.LastLoginTime}); err != nil {
		return nil, errors.Wrap(err, "failed to record login time")
	}

	return srv.issueSession(ctx, user, false)
}

// Refresh redeems a single-use refresh token for a fresh pair. The identity
// must name the same user the token was issued to.
func (srv *authService) Refresh(ctx context.Context, identity, refreshToken string) (*usecase.AuthResult, error) {
	if identity == "" || refreshToken == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("identity and refreshToken are required")
	}

	user, err := srv.users.FindByExternalID(ctx, identity)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to look up user by external id")
	}

	session, err := srv.sessions.ConsumeByHash(ctx, srv.tokens.HashRefreshToken(refreshToken))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRefreshTokenNotFound):
			return nil, domainerrors.ErrRefreshTokenInvalid
		case errors.Is(err, repository.ErrRefreshTokenExpired):
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token expired")
		default:
			return nil, errors.Wrap(err, "failed to consume refresh token")
		}
	}

	if session.UserID != user.ID {
		// The token was minted for someone else. It is already gone.
		srv.logger.Warn("refresh token presented for wrong user",
			slog.String("tokenUserID", session.UserID.String()),
			slog.String("claimedUserID", user.ID.String()))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	return srv.issueSession(ctx, user, false)
}

// Logout revokes every session of the user. Access tokens stay valid until
// they expire on their own; only refresh tokens are revocable.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.sessions.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to revoke sessions")
	}

	srv.logger.Info("user logged out", slog.String("userID", userID.String()))

	return nil
}

// issueSession mints a new access/refresh pair and persists the refresh hash.
// As a side effect it sweeps expired sessions, the only cleanup the table gets.
func (srv *authService) issueSession(ctx context.Context, user *entity.User, created bool) (*usecase.AuthResult, error) {
	if removed, err := srv.sessions.DeleteExpired(ctx); err != nil {
		srv.logger.Warn("failed to sweep expired sessions", slog.Any("error", err))
	} else if removed > 0 {
		srv.logger.Debug("swept expired sessions", slog.Int64("removed", removed))
	}

	accessToken, err := srv.tokens.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	rawRefresh, refreshHash, err := srv.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	if err := srv.sessions.Create(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: refreshHash,
		ExpiresAt: time.Now().Add(srv.tokens.GetRefreshTokenDuration()),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	return &usecase.AuthResult{
		Token: usecase.TokenDTO{
			TokenType:    "Bearer",
			AccessToken:  accessToken,
			RefreshToken: rawRefresh,
			ExpiresIn:    int64(srv.tokens.GetAccessTokenDuration().Seconds()),
		},
		User:    usecase.ToUserDTO(user),
		Created: created,
	}, nil
}
