package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"futsalcourt/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, s *domain.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) DeleteByJTI(ctx context.Context, jti string) error {
	args := m.Called(ctx, jti)
	return args.Error(0)
}

func (m *MockRepository) ListActive(ctx context.Context) ([]domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Session), args.Error(1)
}

// fakeTokens encodes tokens as "jti|rollNo" so tests stay independent of the
// real JWT service.
type fakeTokens struct{}

func (fakeTokens) GenerateToken(jti, rollNo string, _ int64) (string, error) {
	return jti + "|" + rollNo, nil
}

func (fakeTokens) ValidateToken(tokenStr string) (*Claims, error) {
	parts := strings.SplitN(tokenStr, "|", 2)
	if len(parts) != 2 {
		return nil, errors.New("invalid token")
	}
	return &Claims{JTI: parts[0], RollNo: parts[1]}, nil
}

func (fakeTokens) TTL() time.Duration { return time.Hour }

func hydratedStore(t *testing.T, repo *MockRepository) *Store {
	t.Helper()
	store := NewStore(repo, fakeTokens{})
	repo.On("ListActive", mock.Anything).Return([]domain.Session{}, nil).Once()
	require.NoError(t, store.Hydrate(context.Background()))
	return store
}

func TestStore_CurrentBeforeHydration(t *testing.T) {
	store := NewStore(new(MockRepository), fakeTokens{})

	rollNo, state := store.Current("anything")

	assert.Equal(t, StateUnknown, state)
	assert.Empty(t, rollNo)
}

func TestStore_LoginNormalizesRollNo(t *testing.T) {
	repo := new(MockRepository)
	store := hydratedStore(t, repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return s.RollNo == "2021CS001"
	})).Return(nil)

	token, err := store.Login(context.Background(), "  2021cs001 ", 7)
	require.NoError(t, err)

	rollNo, state := store.Current(token)
	assert.Equal(t, StateAuthenticated, state)
	assert.Equal(t, "2021CS001", rollNo)
}

func TestStore_LogoutMakesIdentityAbsent(t *testing.T) {
	repo := new(MockRepository)
	store := hydratedStore(t, repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("DeleteByJTI", mock.Anything, mock.Anything).Return(nil)

	token, err := store.Login(context.Background(), "2021cs001", 7)
	require.NoError(t, err)

	require.NoError(t, store.Logout(context.Background(), token))

	rollNo, state := store.Current(token)
	assert.Equal(t, StateAnonymous, state)
	assert.Empty(t, rollNo)
}

func TestStore_HydrateLoadsDurableSessions(t *testing.T) {
	repo := new(MockRepository)
	store := NewStore(repo, fakeTokens{})

	repo.On("ListActive", mock.Anything).Return([]domain.Session{
		{JTI: "abc", RollNo: "2021CS001", ExpiresAt: time.Now().Add(time.Hour)},
	}, nil).Once()

	require.NoError(t, store.Hydrate(context.Background()))

	rollNo, state := store.Current("abc|2021CS001")
	assert.Equal(t, StateAuthenticated, state)
	assert.Equal(t, "2021CS001", rollNo)

	// A second hydration is a no-op.
	require.NoError(t, store.Hydrate(context.Background()))
	repo.AssertNumberOfCalls(t, "ListActive", 1)
}

func TestStore_CurrentWithUnknownToken(t *testing.T) {
	repo := new(MockRepository)
	store := hydratedStore(t, repo)

	rollNo, state := store.Current("nope|ghost")
	assert.Equal(t, StateAnonymous, state)
	assert.Empty(t, rollNo)

	rollNo, state = store.Current("")
	assert.Equal(t, StateAnonymous, state)
	assert.Empty(t, rollNo)
}
