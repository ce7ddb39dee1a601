package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/repos"
	types "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/ctxutil"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
	pkgerrors "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/errors"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/platform/apierr"
)

type JWTClaims struct {
	jwt.RegisteredClaims
}

type AuthConfig struct {
	JWTSecretKey       string
	AccessTTL          time.Duration
	AllowPasswordReset bool
}

type AuthService interface {
	Register(dbc dbctx.Context, username, password string) (*types.User, error)
	Authenticate(dbc dbctx.Context, username, password string) (string, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	Logout(dbc dbctx.Context) error
	VerifyUsername(dbc dbctx.Context, username string) error
	ResetPassword(dbc dbctx.Context, username, newPassword string) error
	Me(dbc dbctx.Context) (*types.User, error)
	PruneExpiredSessions(dbc dbctx.Context) (int64, error)
	LiveSessions(dbc dbctx.Context) (int64, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
	notifier      SessionNotifier
	cfg           AuthConfig
	now           func() time.Time
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	notifier SessionNotifier,
	cfg AuthConfig,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:            db,
		log:           serviceLog,
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		notifier:      notifier,
		cfg:           cfg,
		now:           time.Now,
	}
}

func (as *authService) Register(dbc dbctx.Context, username, password string) (*types.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, invalidArgument("invalid_username", "username is required")
	}
	if password == "" {
		return nil, invalidArgument("invalid_password", "password is required")
	}
	if score := PasswordStrength(password); score < MinPasswordStrength {
		return nil, invalidArgument("weak_password",
			fmt.Sprintf("password strength %d is below %d", score, MinPasswordStrength))
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, internal("hash_failed", err)
	}

	user := &types.User{Username: username, Password: hashed}
	err = as.db.WithContext(ctxutil.Default(dbc.Ctx)).Transaction(func(tx *gorm.DB) error {
		inner := dbc.WithTx(tx)
		exists, err := as.userRepo.UsernameExists(inner, username)
		if err != nil {
			return internal("user_lookup_failed", err)
		}
		if exists {
			return apierr.Conflict("username_taken", fmt.Errorf("username %q: %w", username, pkgerrors.ErrConflict))
		}
		if _, err := as.userRepo.Create(inner, []*types.User{user}); err != nil {
			return internal("user_create_failed", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	as.log.Info("User registered", "user_id", user.ID.String())
	return user, nil
}

func (as *authService) Authenticate(dbc dbctx.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", apierr.Unauthorized("invalid_credentials", errors.New("username and password are required"))
	}

	users, err := as.userRepo.GetByUsernames(dbc, []string{username})
	if err != nil {
		return "", internal("user_lookup_failed", err)
	}
	if len(users) == 0 || !checkPassword(users[0].Password, password) {
		return "", apierr.Unauthorized("invalid_credentials", errors.New("invalid username or password"))
	}
	user := users[0]

	now := as.now()
	tok, err := as.generateAccessToken(user, now)
	if err != nil {
		return "", internal("token_sign_failed", err)
	}
	session := &types.UserToken{
		UserID:      user.ID,
		AccessToken: tok,
		ExpiresAt:   now.Add(as.cfg.AccessTTL),
	}
	if _, err := as.userTokenRepo.Create(dbc, []*types.UserToken{session}); err != nil {
		as.log.Warn("Create user token failed", "error", err)
		return "", internal("session_create_failed", err)
	}
	as.log.Info("User authenticated", "user_id", user.ID.String(), "session_id", session.ID.String())
	return tok, nil
}

func (as *authService) generateAccessToken(user *types.User, now time.Time) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.cfg.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.cfg.JWTSecretKey))
}

// SetContextFromToken accepts a token only while its session row exists.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, apierr.Unauthorized("unauthorized", errors.New("missing token"))
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.cfg.JWTSecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(as.now),
	)
	if err != nil {
		return ctx, apierr.Unauthorized("invalid_token", fmt.Errorf("parse token: %w", err))
	}
	claims, ok := parsed.Claims.(*JWTClaims)
	if !ok || !parsed.Valid {
		return ctx, apierr.Unauthorized("invalid_token", errors.New("invalid or expired token"))
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, apierr.Unauthorized("invalid_token", fmt.Errorf("invalid user id in token: %w", err))
	}

	found, err := as.userTokenRepo.GetByAccessTokens(dbctx.From(ctx), []string{tokenString})
	if err != nil {
		return ctx, internal("session_lookup_failed", err)
	}
	if len(found) == 0 || found[0].UserID != userID || found[0].Expired(as.now()) {
		return ctx, apierr.Unauthorized("session_expired", errors.New("session has ended"))
	}

	rd := &ctxutil.RequestData{
		TokenString: tokenString,
		UserID:      userID,
		SessionID:   found[0].ID,
	}
	return ctxutil.WithRequestData(ctx, rd), nil
}

func (as *authService) Logout(dbc dbctx.Context) error {
	rd := ctxutil.GetRequestData(dbc.Ctx)
	if rd == nil || rd.SessionID == uuid.Nil {
		as.log.Warn("Logout without request data")
		return unauthorized()
	}
	if err := as.userTokenRepo.DeleteByIDs(dbc, []uuid.UUID{rd.SessionID}); err != nil {
		return internal("session_delete_failed", err)
	}
	as.notifier.SessionEnded(rd.UserID, rd.SessionID, "logout")
	as.log.Info("User logged out", "user_id", rd.UserID.String(), "session_id", rd.SessionID.String())
	return nil
}

func (as *authService) VerifyUsername(dbc dbctx.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return invalidArgument("invalid_username", "username is required")
	}
	exists, err := as.userRepo.UsernameExists(dbc, username)
	if err != nil {
		return internal("user_lookup_failed", err)
	}
	if !exists {
		return notFound("user_not_found", "username "+username)
	}
	return nil
}

// ResetPassword has no proof of identity beyond the username, so it stays off
// unless explicitly enabled. Every session of the account is revoked.
func (as *authService) ResetPassword(dbc dbctx.Context, username, newPassword string) error {
	if !as.cfg.AllowPasswordReset {
		return apierr.Forbidden("password_reset_disabled", fmt.Errorf("password reset: %w", pkgerrors.ErrForbidden))
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return invalidArgument("invalid_username", "username is required")
	}
	if score := PasswordStrength(newPassword); score < MinPasswordStrength {
		return invalidArgument("weak_password",
			fmt.Sprintf("password strength %d is below %d", score, MinPasswordStrength))
	}
	hashed, err := hashPassword(newPassword)
	if err != nil {
		return internal("hash_failed", err)
	}

	var userID uuid.UUID
	err = as.db.WithContext(ctxutil.Default(dbc.Ctx)).Transaction(func(tx *gorm.DB) error {
		inner := dbc.WithTx(tx)
		users, err := as.userRepo.GetByUsernames(inner, []string{username})
		if err != nil {
			return internal("user_lookup_failed", err)
		}
		if len(users) == 0 {
			return notFound("user_not_found", "username "+username)
		}
		userID = users[0].ID
		if err := as.userRepo.UpdatePassword(inner, userID, hashed); err != nil {
			return internal("password_update_failed", err)
		}
		if err := as.userTokenRepo.DeleteByUserIDs(inner, []uuid.UUID{userID}); err != nil {
			return internal("session_delete_failed", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	as.notifier.SessionEnded(userID, uuid.Nil, "password_reset")
	as.log.Info("Password reset", "user_id", userID.String())
	return nil
}

func (as *authService) Me(dbc dbctx.Context) (*types.User, error) {
	rd := ctxutil.GetRequestData(dbc.Ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		as.log.Warn("Request data not set in context")
		return nil, unauthorized()
	}
	found, err := as.userRepo.GetByIDs(dbc, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, internal("user_lookup_failed", err)
	}
	if len(found) == 0 || found[0] == nil {
		return nil, apierr.New(http.StatusUnauthorized, "user_not_found", errors.New("user does not exist"))
	}
	return found[0], nil
}

func (as *authService) PruneExpiredSessions(dbc dbctx.Context) (int64, error) {
	n, err := as.userTokenRepo.DeleteExpired(dbc, as.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		as.log.Debug("Pruned expired sessions", "count", n)
	}
	return n, nil
}

func (as *authService) LiveSessions(dbc dbctx.Context) (int64, error) {
	return as.userTokenRepo.CountLive(dbc, as.now())
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.cfg.AccessTTL
}
