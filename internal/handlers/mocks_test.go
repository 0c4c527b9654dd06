package handlers_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/tubeview/tubeview_backend/internal/core/domain"
	portssvc "github.com/tubeview/tubeview_backend/internal/core/ports/services"
	"github.com/tubeview/tubeview_backend/internal/core/services"
	"github.com/tubeview/tubeview_backend/internal/dto"
	"github.com/tubeview/tubeview_backend/internal/handlers"
	"github.com/tubeview/tubeview_backend/internal/platform/config"
)

// --- Mock UserSvcFacade ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock ActivitySvcFacade ---
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) AddHistory(ctx context.Context, userID int64, req dto.AddHistoryRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockActivityService) ListHistory(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

func (m *MockActivityService) DeleteHistory(ctx context.Context, userID int64, entryID int64) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

func (m *MockActivityService) ClearHistory(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockActivityService) AddFavorite(ctx context.Context, userID int64, req dto.AddFavoriteRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockActivityService) ListFavorites(ctx context.Context, userID int64) ([]domain.FavoriteEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FavoriteEntry), args.Error(1)
}

var _ portssvc.ActivitySvcFacade = (*MockActivityService)(nil)

// --- Mock CatalogSvcFacade ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Search(ctx context.Context, query string, maxResults int64) ([]domain.VideoSummary, error) {
	args := m.Called(ctx, query, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VideoSummary), args.Error(1)
}

func (m *MockCatalogService) GetVideo(ctx context.Context, videoID string) (*domain.VideoDetail, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoDetail), args.Error(1)
}

func (m *MockCatalogService) Popular(ctx context.Context, maxResults int64) ([]domain.VideoSummary, error) {
	args := m.Called(ctx, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VideoSummary), args.Error(1)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// testRouterEnv bundles a router wired with mocked facades and a real token
// service, so auth flows in tests use real signed tokens.
type testRouterEnv struct {
	router       *gin.Engine
	cfg          *config.Config
	userService  *MockUserService
	activity     *MockActivityService
	catalog      *MockCatalogService
	tokenService portssvc.TokenSvcFacade
}

func newTestRouterEnv() *testRouterEnv {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:         "handler-test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "tubeview-test",
	}

	env := &testRouterEnv{
		cfg:          cfg,
		userService:  new(MockUserService),
		activity:     new(MockActivityService),
		catalog:      new(MockCatalogService),
		tokenService: services.NewTokenService(cfg),
	}

	container := &portssvc.ServiceContainer{
		User:     env.userService,
		Token:    env.tokenService,
		Activity: env.activity,
		Catalog:  env.catalog,
	}

	env.router = gin.New()
	handlers.RegisterRoutes(env.router, cfg, container)
	return env
}

// issueTestToken mints a real token for the given user identity.
func (e *testRouterEnv) issueTestToken(id int64, username, email string) string {
	token, err := e.tokenService.IssueToken(&domain.User{ID: id, Username: username, Email: email})
	if err != nil {
		panic(err)
	}
	return token
}
