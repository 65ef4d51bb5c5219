package handlers_test

import (
	"ItemKeeper/internal/auth"
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/handlers"
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
	"ItemKeeper/internal/service"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) List(ctx context.Context, f repo.ItemFilter) ([]model.Item, int64, error) {
	args := m.Called(ctx, f)
	var items []model.Item
	if v, ok := args.Get(0).([]model.Item); ok {
		items = v
	}
	return items, args.Get(1).(int64), args.Error(2)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id uint) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) Save(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockItemRepo) CreateIfAbsent(ctx context.Context, it *model.Item) (bool, error) {
	args := m.Called(ctx, it)
	return args.Bool(0), args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

// мок для repo.Pinger
type mockPinger struct{ err error }

func (p mockPinger) Ping(ctx context.Context) error { return p.err }

// --- Helpers ---

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		AuthSecret:    testSecret,
		TokenTTLHours: 1,
		PageSize:      10,
		MaxPageSize:   100,
	}
}

// newTestRouter собирает роутер на мок-репозиториях.
func newTestRouter(t *testing.T, ur repo.UserRepository, ir repo.ItemRepository) http.Handler {
	t.Helper()
	cfg := testConfig()
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur)
	itemSvc := service.NewItemService(ir, logger, cfg.PageSize, cfg.MaxPageSize)
	h := handlers.NewHandler(userSvc, itemSvc, mockPinger{}, logger, cfg)
	return h.Router
}

// addAuthHeader подписывает токен тем же секретом, что и сервер в тестах.
func addAuthHeader(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	token, err := auth.IssueToken(userID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req.Header.Set("Authorization", "Token "+token)
}
