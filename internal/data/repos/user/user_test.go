package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/repos/testutil"
	types "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.From(context.Background())

	created, err := repo.Create(dbc, []*types.User{
		{Username: "Ada", Password: "hash"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 || created[0].ID == uuid.Nil {
		t.Fatalf("Create: unexpected result: %+v", created)
	}

	gotByIDs, err := repo.GetByIDs(dbc, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(gotByIDs) != 1 || gotByIDs[0].ID != created[0].ID {
		t.Fatalf("GetByIDs: unexpected result: %+v", gotByIDs)
	}

	gotByNames, err := repo.GetByUsernames(dbc, []string{" ada "})
	if err != nil {
		t.Fatalf("GetByUsernames: %v", err)
	}
	if len(gotByNames) != 1 || gotByNames[0].Username != "Ada" {
		t.Fatalf("GetByUsernames: unexpected result: %+v", gotByNames)
	}

	exists, err := repo.UsernameExists(dbc, "ADA")
	if err != nil {
		t.Fatalf("UsernameExists: %v", err)
	}
	if !exists {
		t.Fatalf("UsernameExists: expected true")
	}

	exists, err = repo.UsernameExists(dbc, "grace")
	if err != nil {
		t.Fatalf("UsernameExists (missing): %v", err)
	}
	if exists {
		t.Fatalf("UsernameExists (missing): expected false")
	}

	if err := repo.UpdatePassword(dbc, created[0].ID, "new-hash"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	gotByIDs, err = repo.GetByIDs(dbc, []uuid.UUID{created[0].ID})
	if err != nil || len(gotByIDs) != 1 {
		t.Fatalf("GetByIDs after update: err=%v len=%d", err, len(gotByIDs))
	}
	if gotByIDs[0].Password != "new-hash" {
		t.Fatalf("UpdatePassword: password=%q", gotByIDs[0].Password)
	}

	if _, err := repo.Create(dbc, []*types.User{{Username: "Ada", Password: "x"}}); err == nil {
		t.Fatalf("Create duplicate username: expected error")
	}
}
