package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	"github.com/tubeview/tubeview_backend/internal/core/domain"
	portsrepo "github.com/tubeview/tubeview_backend/internal/core/ports/repositories"
	portssvc "github.com/tubeview/tubeview_backend/internal/core/ports/services"
	"github.com/tubeview/tubeview_backend/internal/core/services"
	"github.com/tubeview/tubeview_backend/internal/dto"
)

// --- Mock HistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) SaveHistoryEntry(ctx context.Context, entry domain.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) FindHistoryByUser(ctx context.Context, userID int64, limit int) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) DeleteHistoryEntry(ctx context.Context, userID int64, entryID int64) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

func (m *MockHistoryRepository) ClearHistory(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portsrepo.HistoryRepository = (*MockHistoryRepository)(nil)

// --- Mock FavoriteRepository ---
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) SaveFavorite(ctx context.Context, entry domain.FavoriteEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFavoriteRepository) FindFavoritesByUser(ctx context.Context, userID int64) ([]domain.FavoriteEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FavoriteEntry), args.Error(1)
}

var _ portsrepo.FavoriteRepository = (*MockFavoriteRepository)(nil)

func newActivityService() (*MockHistoryRepository, *MockFavoriteRepository, portssvc.ActivitySvcFacade) {
	historyRepo := new(MockHistoryRepository)
	favoriteRepo := new(MockFavoriteRepository)
	return historyRepo, favoriteRepo, services.NewActivityService(historyRepo, favoriteRepo)
}

func TestAddHistory_RequiresVideoOrQuery(t *testing.T) {
	historyRepo, _, svc := newActivityService()

	err := svc.AddHistory(context.Background(), 1, dto.AddHistoryRequest{VideoID: "", SearchQuery: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	historyRepo.AssertNotCalled(t, "SaveHistoryEntry", mock.Anything, mock.Anything)
}

func TestAddHistory_DefaultsToWatch(t *testing.T) {
	historyRepo, _, svc := newActivityService()

	var saved domain.HistoryEntry
	historyRepo.On("SaveHistoryEntry", mock.Anything, mock.AnythingOfType("domain.HistoryEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.HistoryEntry)
		}).
		Return(nil)

	err := svc.AddHistory(context.Background(), 1, dto.AddHistoryRequest{VideoID: "abc123", VideoTitle: "A Video"})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionWatch, saved.ActionType)
	assert.Equal(t, int64(1), saved.UserID)
	assert.WithinDuration(t, time.Now().UTC(), saved.WatchedAt, 5*time.Second)
}

func TestAddHistory_SearchOnly(t *testing.T) {
	historyRepo, _, svc := newActivityService()

	var saved domain.HistoryEntry
	historyRepo.On("SaveHistoryEntry", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.HistoryEntry)
		}).
		Return(nil)

	err := svc.AddHistory(context.Background(), 1, dto.AddHistoryRequest{SearchQuery: "cats", ActionType: "search"})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionSearch, saved.ActionType)
	assert.Empty(t, saved.VideoID)
}

func TestDeleteHistory_NotFoundPassesThrough(t *testing.T) {
	historyRepo, _, svc := newActivityService()

	historyRepo.On("DeleteHistoryEntry", mock.Anything, int64(2), int64(99)).Return(apperrors.ErrNotFound)

	err := svc.DeleteHistory(context.Background(), 2, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAddFavorite_RequiresVideoID(t *testing.T) {
	_, favoriteRepo, svc := newActivityService()

	err := svc.AddFavorite(context.Background(), 1, dto.AddFavoriteRequest{VideoID: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	favoriteRepo.AssertNotCalled(t, "SaveFavorite", mock.Anything, mock.Anything)
}

func TestAddFavorite_DuplicatePassesThrough(t *testing.T) {
	_, favoriteRepo, svc := newActivityService()

	favoriteRepo.On("SaveFavorite", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate)

	err := svc.AddFavorite(context.Background(), 1, dto.AddFavoriteRequest{VideoID: "abc123"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestListHistory_CapsAtFifty(t *testing.T) {
	historyRepo, _, svc := newActivityService()

	historyRepo.On("FindHistoryByUser", mock.Anything, int64(1), 50).Return([]domain.HistoryEntry{}, nil)

	_, err := svc.ListHistory(context.Background(), 1)
	require.NoError(t, err)
	historyRepo.AssertExpectations(t)
}
