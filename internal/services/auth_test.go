package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/ctxutil"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime"
)

const strongPassword = "Correct-Horse9"

func newAuth(env *testEnv, allowReset bool) *authService {
	svc := NewAuthService(env.db, env.log, env.users, env.tokens, NewSessionNotifier(env.emitter), AuthConfig{
		JWTSecretKey:       "test-secret",
		AccessTTL:          time.Hour,
		AllowPasswordReset: allowReset,
	})
	return svc.(*authService)
}

func TestPasswordStrength(t *testing.T) {
	cases := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abc", 0},
		{"abcdefgh", 25},
		{"abcdefghijkl", 50},
		{"Abcdefgh", 50},
		{"abcdefg1", 40},
		{"abcdefg!", 35},
		{"Abcdefghijk1!", 100},
		{"Ab1!", 50},
	}
	for _, tc := range cases {
		if got := PasswordStrength(tc.password); got != tc.want {
			t.Fatalf("PasswordStrength(%q): want=%d got=%d", tc.password, tc.want, got)
		}
	}
}

func TestAuthRegister(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuth(env, false)

	u, err := svc.Register(bg(), "  ada  ", strongPassword)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Username != "ada" || u.Password == strongPassword {
		t.Fatalf("Register: unexpected user %+v", u)
	}

	_, err = svc.Register(bg(), "ADA", strongPassword)
	requireAPIError(t, err, http.StatusConflict, "username_taken")

	_, err = svc.Register(bg(), "grace", "short")
	requireAPIError(t, err, http.StatusBadRequest, "weak_password")

	_, err = svc.Register(bg(), "   ", strongPassword)
	requireAPIError(t, err, http.StatusBadRequest, "invalid_username")
}

func TestAuthSessionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuth(env, false)
	if _, err := svc.Register(bg(), "ada", strongPassword); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Authenticate(bg(), "ada", "wrong-password")
	requireAPIError(t, err, http.StatusUnauthorized, "invalid_credentials")
	_, err = svc.Authenticate(bg(), "nobody", strongPassword)
	requireAPIError(t, err, http.StatusUnauthorized, "invalid_credentials")

	token, err := svc.Authenticate(bg(), "Ada", strongPassword)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}

	ctx, err := svc.SetContextFromToken(context.Background(), token)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil || rd.SessionID == uuid.Nil || rd.TokenString != token {
		t.Fatalf("request data: %+v", rd)
	}

	me, err := svc.Me(dbctx.From(ctx))
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me.Username != "ada" {
		t.Fatalf("Me: username=%q", me.Username)
	}

	if err := svc.Logout(dbctx.From(ctx)); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	_, err = svc.SetContextFromToken(context.Background(), token)
	requireAPIError(t, err, http.StatusUnauthorized, "session_expired")

	events := env.emitter.events()
	if len(events) != 1 {
		t.Fatalf("events: want=1 got=%d", len(events))
	}
	if events[0].Event != realtime.SSEEventSessionEnded || events[0].SessionID != rd.SessionID.String() {
		t.Fatalf("logout event: %+v", events[0])
	}
	if events[0].Channel != realtime.UserChannel(rd.UserID) {
		t.Fatalf("logout channel: %q", events[0].Channel)
	}

	err = svc.Logout(bg())
	requireAPIError(t, err, http.StatusUnauthorized, "unauthorized")
}

func TestAuthRejectsExpiredAndForeignTokens(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuth(env, false)
	if _, err := svc.Register(bg(), "ada", strongPassword); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := svc.Authenticate(bg(), "ada", strongPassword)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}

	other := newAuth(env, false)
	other.cfg.JWTSecretKey = "another-secret"
	_, err = other.SetContextFromToken(context.Background(), token)
	requireAPIError(t, err, http.StatusUnauthorized, "invalid_token")

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.SetContextFromToken(context.Background(), token)
	requireAPIError(t, err, http.StatusUnauthorized, "invalid_token")

	n, err := svc.PruneExpiredSessions(bg())
	if err != nil || n != 1 {
		t.Fatalf("PruneExpiredSessions: err=%v n=%d", err, n)
	}
}

func TestAuthVerifyUsername(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuth(env, false)
	if _, err := svc.Register(bg(), "ada", strongPassword); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.VerifyUsername(bg(), "ADA"); err != nil {
		t.Fatalf("VerifyUsername: %v", err)
	}
	requireAPIError(t, svc.VerifyUsername(bg(), "grace"), http.StatusNotFound, "user_not_found")
}

func TestAuthResetPassword(t *testing.T) {
	env := newTestEnv(t)

	disabled := newAuth(env, false)
	requireAPIError(t, disabled.ResetPassword(bg(), "ada", strongPassword), http.StatusForbidden, "password_reset_disabled")

	svc := newAuth(env, true)
	if _, err := svc.Register(bg(), "ada", strongPassword); err != nil {
		t.Fatalf("Register: %v", err)
	}
	oldToken, err := svc.Authenticate(bg(), "ada", strongPassword)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}

	requireAPIError(t, svc.ResetPassword(bg(), "ada", "weak"), http.StatusBadRequest, "weak_password")
	requireAPIError(t, svc.ResetPassword(bg(), "grace", "Brand-New-Pass7"), http.StatusNotFound, "user_not_found")

	if err := svc.ResetPassword(bg(), "ada", "Brand-New-Pass7"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	_, err = svc.SetContextFromToken(context.Background(), oldToken)
	requireAPIError(t, err, http.StatusUnauthorized, "session_expired")

	if _, err := svc.Authenticate(bg(), "ada", strongPassword); err == nil {
		t.Fatalf("Authenticate with old password: expected error")
	}
	if _, err := svc.Authenticate(bg(), "ada", "Brand-New-Pass7"); err != nil {
		t.Fatalf("Authenticate with new password: %v", err)
	}

	events := env.emitter.events()
	if len(events) != 1 || events[0].Event != realtime.SSEEventSessionEnded || events[0].SessionID != "" {
		t.Fatalf("reset events: %+v", events)
	}
}
