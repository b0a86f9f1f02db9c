// Package session keeps the current-identity state behind issued login
// tokens. Durable state lives in the sessions table; lookups after startup
// are served from memory. Until the one-time hydration from the table has
// run, the store answers "not yet determined" rather than "absent".
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"futsalcourt/internal/domain"
)

type State int

const (
	// StateUnknown is reported before Hydrate has completed.
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

var (
	ErrNotHydrated  = errors.New("session store not hydrated")
	ErrInvalidToken = errors.New("invalid session token")
)

type Repository interface {
	Create(ctx context.Context, s *domain.Session) error
	DeleteByJTI(ctx context.Context, jti string) error
	ListActive(ctx context.Context) ([]domain.Session, error)
}

type TokenService interface {
	GenerateToken(jti, rollNo string, studentID int64) (string, error)
	ValidateToken(tokenStr string) (*Claims, error)
	TTL() time.Duration
}

// Claims is the subset of token claims the store cares about.
type Claims struct {
	JTI       string
	RollNo    string
	StudentID int64
}

type Store struct {
	repo   Repository
	tokens TokenService

	mu       sync.RWMutex
	active   map[string]string // jti -> roll number
	hydrated bool
}

func NewStore(repo Repository, tokens TokenService) *Store {
	return &Store{
		repo:   repo,
		tokens: tokens,
		active: make(map[string]string),
	}
}

// Hydrate loads active sessions from durable storage. It runs the load once;
// later calls are no-ops.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.RLock()
	done := s.hydrated
	s.mu.RUnlock()
	if done {
		return nil
	}

	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hydrated {
		return nil
	}
	for _, r := range rows {
		s.active[r.JTI] = r.RollNo
	}
	s.hydrated = true
	return nil
}

// Login persists a session for the given identity and returns the signed
// token. The roll number is normalized to upper case before it is stored.
func (s *Store) Login(ctx context.Context, rollNo string, studentID int64) (string, error) {
	rollNo = NormalizeRollNo(rollNo)
	if rollNo == "" {
		return "", ErrInvalidToken
	}

	jti := uuid.NewString()
	row := &domain.Session{
		JTI:       jti,
		RollNo:    rollNo,
		ExpiresAt: time.Now().Add(s.tokens.TTL()),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return "", err
	}

	token, err := s.tokens.GenerateToken(jti, rollNo, studentID)
	if err != nil {
		_ = s.repo.DeleteByJTI(ctx, jti)
		return "", err
	}

	s.mu.Lock()
	s.active[jti] = rollNo
	s.mu.Unlock()

	return token, nil
}

// Logout revokes the token: the durable row is deleted and the in-memory
// entry cleared, so Current reports absent afterwards.
func (s *Store) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return ErrInvalidToken
	}

	if err := s.repo.DeleteByJTI(ctx, claims.JTI); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.active, claims.JTI)
	s.mu.Unlock()

	return nil
}

// Current resolves the identity behind a token from memory only. No storage
// or network call happens here.
func (s *Store) Current(token string) (string, State) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hydrated {
		return "", StateUnknown
	}
	if token == "" {
		return "", StateAnonymous
	}

	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return "", StateAnonymous
	}

	rollNo, ok := s.active[claims.JTI]
	if !ok {
		return "", StateAnonymous
	}
	return rollNo, StateAuthenticated
}

func NormalizeRollNo(rollNo string) string {
	return strings.ToUpper(strings.TrimSpace(rollNo))
}
