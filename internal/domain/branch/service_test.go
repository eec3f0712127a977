package branch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barbershop/internal/pkg/apperror"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListWithAddresses(ctx context.Context) ([]Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Branch), args.Error(1)
}

func (m *MockRepository) GetWithAddress(ctx context.Context, id int64) (*Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Branch), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, b *Branch) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 42
	}
	return args.Error(0)
}

func (m *MockRepository) CreateAddress(ctx context.Context, a *Address) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 7
	}
	return args.Error(0)
}

func (m *MockRepository) AddressExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetBranches(ctx context.Context) ([]Branch, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]Branch), args.Bool(1), args.Error(2)
}

func (m *MockCache) SetBranches(ctx context.Context, branches []Branch) error {
	args := m.Called(ctx, branches)
	return args.Error(0)
}

func (m *MockCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func sampleBranches() []Branch {
	return []Branch{
		{ID: 1, Name: "A", AddressID: 1, Address: &Address{ID: 1, Latitude: 10, Longitude: 10}},
		{ID: 2, Name: "B", AddressID: 2, Address: &Address{ID: 2, Latitude: 0, Longitude: 0}},
	}
}

func TestService_Rank_FromRepository(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListWithAddresses", mock.Anything).Return(sampleBranches(), nil)

	svc := NewService(repo, nil, zap.NewNop())
	ranked, err := svc.Rank(context.Background(), Coordinate{})

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "B", ranked[0].Name)
	assert.Equal(t, "A", ranked[1].Name)
	repo.AssertExpectations(t)
}

func TestService_Rank_EmptyDirectory(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListWithAddresses", mock.Anything).Return([]Branch{}, nil)

	svc := NewService(repo, nil, zap.NewNop())
	ranked, err := svc.Rank(context.Background(), Coordinate{Latitude: 43.2, Longitude: 76.9})

	require.NoError(t, err)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestService_Rank_CacheHit(t *testing.T) {
	repo := new(MockRepository)
	cache := new(MockCache)
	cache.On("GetBranches", mock.Anything).Return(sampleBranches(), true, nil)

	svc := NewService(repo, cache, zap.NewNop())
	ranked, err := svc.Rank(context.Background(), Coordinate{})

	require.NoError(t, err)
	assert.Len(t, ranked, 2)
	repo.AssertNotCalled(t, "ListWithAddresses", mock.Anything)
}

func TestService_Rank_CacheMissFillsCache(t *testing.T) {
	repo := new(MockRepository)
	cache := new(MockCache)
	branches := sampleBranches()
	cache.On("GetBranches", mock.Anything).Return(nil, false, nil)
	repo.On("ListWithAddresses", mock.Anything).Return(branches, nil)
	cache.On("SetBranches", mock.Anything, branches).Return(nil)

	svc := NewService(repo, cache, zap.NewNop())
	_, err := svc.Rank(context.Background(), Coordinate{})

	require.NoError(t, err)
	cache.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestService_Rank_CacheErrorFallsBackToRepository(t *testing.T) {
	repo := new(MockRepository)
	cache := new(MockCache)
	cache.On("GetBranches", mock.Anything).Return(nil, false, errors.New("redis down"))
	repo.On("ListWithAddresses", mock.Anything).Return(sampleBranches(), nil)
	cache.On("SetBranches", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	svc := NewService(repo, cache, zap.NewNop())
	ranked, err := svc.Rank(context.Background(), Coordinate{})

	require.NoError(t, err)
	assert.Len(t, ranked, 2)
}

func TestService_Rank_RepositoryFailureIsInternal(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListWithAddresses", mock.Anything).Return(nil, errors.New("connection refused"))

	svc := NewService(repo, nil, zap.NewNop())
	_, err := svc.Rank(context.Background(), Coordinate{})

	require.Error(t, err)
	assert.True(t, apperror.IsInternal(err))
	assert.Equal(t, "internal error", err.Error())
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockRepository)
	cache := new(MockCache)
	repo.On("AddressExists", mock.Anything, int64(3)).Return(true, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*branch.Branch")).Return(nil)
	cache.On("Invalidate", mock.Anything).Return(nil)

	svc := NewService(repo, cache, zap.NewNop())
	b, err := svc.Create(context.Background(), CreateBranchInput{Name: "  Downtown ", PhoneNumber: " +7 727 000", AddressID: 3})

	require.NoError(t, err)
	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, "  Downtown ", b.Name)
	assert.Equal(t, " +7 727 000", b.PhoneNumber)
	cache.AssertCalled(t, "Invalidate", mock.Anything)
}

func TestService_Create_UnknownAddress(t *testing.T) {
	repo := new(MockRepository)
	repo.On("AddressExists", mock.Anything, int64(99)).Return(false, nil)

	svc := NewService(repo, nil, zap.NewNop())
	_, err := svc.Create(context.Background(), CreateBranchInput{Name: "Downtown", AddressID: 99})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, "address with id 99 does not exist", err.Error())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidInput(t *testing.T) {
	repo := new(MockRepository)

	svc := NewService(repo, nil, zap.NewNop())
	_, err := svc.Create(context.Background(), CreateBranchInput{Name: "   ", AddressID: 3})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, "name must not be blank", err.Error())
	repo.AssertNotCalled(t, "AddressExists", mock.Anything, mock.Anything)
}

func TestService_CreateAddress(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CreateAddress", mock.Anything, mock.AnythingOfType("*branch.Address")).Return(nil)

	lat, lon := 43.238, 76.889
	svc := NewService(repo, nil, zap.NewNop())
	a, err := svc.CreateAddress(context.Background(), CreateAddressInput{Latitude: &lat, Longitude: &lon, FullAddress: "Abay ave 10"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, 43.238, a.Latitude)
}

func TestService_CreateAddress_OutOfRange(t *testing.T) {
	lat, lon := 91.0, 0.0
	svc := NewService(new(MockRepository), nil, zap.NewNop())
	_, err := svc.CreateAddress(context.Background(), CreateAddressInput{Latitude: &lat, Longitude: &lon, FullAddress: "Nowhere"})

	assert.True(t, apperror.IsValidation(err))
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetWithAddress", mock.Anything, int64(5)).Return(nil, ErrNotFound)

	svc := NewService(repo, nil, zap.NewNop())
	_, err := svc.GetByID(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNotFound)
}
