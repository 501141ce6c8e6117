package repositories

import (
	"context"
	"errors"

	"giftly/internal/models/db_models"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, session *db_models.Session) error
	GetByID(ctx context.Context, id string) (*db_models.Session, error)
	Count(ctx context.Context) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *db_models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*db_models.Session, error) {
	var session db_models.Session
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Session{}).Count(&count).Error
	return count, err
}
