package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/repos/testutil"
	types "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
)

func TestUserTokenRepo(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.From(ctx)
	repo := NewUserTokenRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, db, "tokens", "pw")
	now := time.Now()

	makeToken := func(access string, expiresAt time.Time) *types.UserToken {
		return &types.UserToken{
			UserID:      u.ID,
			AccessToken: access,
			ExpiresAt:   expiresAt,
		}
	}

	t1 := makeToken("access-1", now.Add(time.Hour))
	t2 := makeToken("access-2", now.Add(-time.Minute))
	if _, err := repo.Create(dbc, []*types.UserToken{t1, t2}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.GetByIDs(dbc, []uuid.UUID{t1.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetByUserIDs(dbc, []uuid.UUID{u.ID}); err != nil || len(rows) != 2 {
		t.Fatalf("GetByUserIDs: err=%v len=%d", err, len(rows))
	}
	rows, err := repo.GetByAccessTokens(dbc, []string{"access-1"})
	if err != nil || len(rows) != 1 || rows[0].ID != t1.ID {
		t.Fatalf("GetByAccessTokens: err=%v rows=%+v", err, rows)
	}
	if rows[0].Expired(now) {
		t.Fatalf("Expired: live token reported expired")
	}

	if live, err := repo.CountLive(dbc, now); err != nil || live != 1 {
		t.Fatalf("CountLive: err=%v live=%d, want 1", err, live)
	}

	removed, err := repo.DeleteExpired(dbc, now)
	if err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if removed != 1 {
		t.Fatalf("DeleteExpired: removed=%d, want 1", removed)
	}

	if err := repo.DeleteByIDs(dbc, []uuid.UUID{t1.ID}); err != nil {
		t.Fatalf("DeleteByIDs: %v", err)
	}
	if rows, err := repo.GetByUserIDs(dbc, []uuid.UUID{u.ID}); err != nil || len(rows) != 0 {
		t.Fatalf("GetByUserIDs after delete: err=%v len=%d", err, len(rows))
	}

	t3 := makeToken("access-3", now.Add(time.Hour))
	if _, err := repo.Create(dbc, []*types.UserToken{t3}); err != nil {
		t.Fatalf("Create t3: %v", err)
	}
	if err := repo.DeleteByUserIDs(dbc, []uuid.UUID{u.ID}); err != nil {
		t.Fatalf("DeleteByUserIDs: %v", err)
	}
	if rows, err := repo.GetByAccessTokens(dbc, []string{"access-3"}); err != nil || len(rows) != 0 {
		t.Fatalf("GetByAccessTokens after DeleteByUserIDs: err=%v len=%d", err, len(rows))
	}
}
