package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"futsalcourt/internal/domain"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SessionRepository) DeleteByJTI(ctx context.Context, jti string) error {
	return r.db.WithContext(ctx).Where("jti = ?", jti).Delete(&domain.Session{}).Error
}

// ListActive returns every session that has not yet expired. Used once at
// startup to hydrate the in-memory session store.
func (r *SessionRepository) ListActive(ctx context.Context) ([]domain.Session, error) {
	var rows []domain.Session
	tx := r.db.WithContext(ctx).Where("expires_at > ?", time.Now()).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).Where("expires_at <= ?", time.Now()).Delete(&domain.Session{})
	return tx.RowsAffected, tx.Error
}
