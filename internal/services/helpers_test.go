package services

import (
	"context"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/repos"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/repos/testutil"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/platform/apierr"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime"
)

type recordingEmitter struct {
	mu   sync.Mutex
	msgs []realtime.SSEMessage
}

func (e *recordingEmitter) Emit(ctx context.Context, msg realtime.SSEMessage) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.msgs = append(e.msgs, msg)
}

func (e *recordingEmitter) events() []realtime.SSEMessage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]realtime.SSEMessage(nil), e.msgs...)
}

type testEnv struct {
	db          *gorm.DB
	log         *logger.Logger
	users       repos.UserRepo
	tokens      repos.UserTokenRepo
	employees   repos.EmployeeRepo
	departments repos.DepartmentRepo
	emitter     *recordingEmitter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return &testEnv{
		db:          db,
		log:         log,
		users:       repos.NewUserRepo(db, log),
		tokens:      repos.NewUserTokenRepo(db, log),
		employees:   repos.NewEmployeeRepo(db, log),
		departments: repos.NewDepartmentRepo(db, log),
		emitter:     &recordingEmitter{},
	}
}

func bg() dbctx.Context { return dbctx.From(context.Background()) }

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	ae, ok := apierr.From(err)
	if !ok {
		t.Fatalf("expected api error %d/%s, got %v", status, code, err)
	}
	if ae.Status != status || ae.Code != code {
		t.Fatalf("api error: want=%d/%s got=%d/%s (%v)", status, code, ae.Status, ae.Code, err)
	}
}
