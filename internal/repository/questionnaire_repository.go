package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mir-dating/backend/internal/domain"
)

type QuestionnaireRepository interface {
	Create(ctx context.Context, quest *domain.Questionnaire) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Questionnaire, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Questionnaire, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Questionnaire, error)
	Update(ctx context.Context, quest *domain.Questionnaire) error
	Delete(ctx context.Context, id uuid.UUID) error
}
