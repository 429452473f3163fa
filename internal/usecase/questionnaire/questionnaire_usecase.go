package questionnaire

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mir-dating/backend/internal/domain"
	"github.com/mir-dating/backend/internal/infrastructure/gemini"
	"github.com/mir-dating/backend/internal/repository"
	"github.com/rs/zerolog"
)

type QuestionnaireUseCase struct {
	questRepo    repository.QuestionnaireRepository
	geminiClient *gemini.Client
	// strictOwnership switches on the ownership checks the historical
	// contract never had (see config.AuthConfig).
	strictOwnership bool
	log             zerolog.Logger
}

func NewQuestionnaireUseCase(
	questRepo repository.QuestionnaireRepository,
	geminiClient *gemini.Client,
	strictOwnership bool,
	log zerolog.Logger,
) *QuestionnaireUseCase {
	return &QuestionnaireUseCase{
		questRepo:       questRepo,
		geminiClient:    geminiClient,
		strictOwnership: strictOwnership,
		log:             log,
	}
}

// HobbyRequest represents one hobby entry in a questionnaire payload
type HobbyRequest struct {
	HobbyName string `json:"hobby_name" binding:"required,max=100"`
}

// QuestionnaireRequest is the create schema; PATCH reuses it as a full
// replacement of every field including the hobby list.
type QuestionnaireRequest struct {
	UserID    int64          `json:"user_id" binding:"required"`
	Firstname string         `json:"firstname" binding:"required,max=100"`
	Lastname  string         `json:"lastname" binding:"required,max=100"`
	Gender    string         `json:"gender" binding:"required,oneof=Male Female"`
	Photo     string         `json:"photo" binding:"required"`
	Country   string         `json:"country" binding:"required,max=100"`
	City      string         `json:"city" binding:"required,max=100"`
	About     string         `json:"about" binding:"required,max=1000"`
	Height    *int           `json:"height" binding:"required,gte=0,lte=300"`
	Goals     string         `json:"goals" binding:"required,oneof='Дружба' 'Флирт' 'Отношения' 'Серьёзные отношения'"`
	BodyType  string         `json:"body_type" binding:"required,oneof='Худое' 'Среднее' 'Спортивное' 'Полное'"`
	Hobbies   []HobbyRequest `json:"hobbies" binding:"required,dive"`
}

func (req *QuestionnaireRequest) toDomain() *domain.Questionnaire {
	hobbies := make([]domain.Hobby, 0, len(req.Hobbies))
	for _, hobby := range req.Hobbies {
		hobbies = append(hobbies, domain.Hobby{HobbyName: hobby.HobbyName})
	}
	return &domain.Questionnaire{
		UserID:    req.UserID,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Gender:    req.Gender,
		Photo:     req.Photo,
		Country:   req.Country,
		City:      req.City,
		About:     req.About,
		Height:    *req.Height,
		Goals:     req.Goals,
		BodyType:  req.BodyType,
		Hobbies:   hobbies,
	}
}

// Create inserts a new questionnaire. The user_id comes from the payload;
// only in strict mode does an authenticated caller override it.
func (uc *QuestionnaireUseCase) Create(ctx context.Context, req *QuestionnaireRequest, actorID *int64) (*domain.Questionnaire, error) {
	quest := req.toDomain()
	if uc.strictOwnership && actorID != nil {
		quest.UserID = *actorID
	}

	if err := uc.questRepo.Create(ctx, quest); err != nil {
		return nil, fmt.Errorf("failed to create questionnaire: %w", err)
	}

	uc.log.Info().Str("quest_id", quest.ID.String()).Int64("user_id", quest.UserID).Msg("questionnaire created")
	return quest, nil
}

// GetByUserID fetches the first questionnaire of the given user
func (uc *QuestionnaireUseCase) GetByUserID(ctx context.Context, userID int64) (*domain.Questionnaire, error) {
	return uc.questRepo.GetByUserID(ctx, userID)
}

// List returns up to limit questionnaires from the whole system, in
// insertion order. It deliberately does not filter by the caller.
func (uc *QuestionnaireUseCase) List(ctx context.Context, limit, offset int) ([]*domain.Questionnaire, error) {
	quests, err := uc.questRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list questionnaires: %w", err)
	}
	if quests == nil {
		quests = []*domain.Questionnaire{}
	}
	return quests, nil
}

// Update replaces every scalar field and the whole hobby collection of
// the record identified by questID.
func (uc *QuestionnaireUseCase) Update(ctx context.Context, questID uuid.UUID, req *QuestionnaireRequest, actorID *int64) (*domain.Questionnaire, error) {
	if uc.strictOwnership {
		if actorID == nil {
			return nil, domain.ErrNotOwner
		}
		existing, err := uc.questRepo.GetByID(ctx, questID)
		if err != nil {
			return nil, err
		}
		if existing.UserID != *actorID {
			return nil, domain.ErrNotOwner
		}
	}

	quest := req.toDomain()
	quest.ID = questID
	if err := uc.questRepo.Update(ctx, quest); err != nil {
		return nil, err
	}

	uc.log.Info().Str("quest_id", questID.String()).Msg("questionnaire updated")
	return quest, nil
}

// Delete removes the record. The caller is authenticated by the route,
// but outside strict mode ownership is not cross-checked.
func (uc *QuestionnaireUseCase) Delete(ctx context.Context, questID uuid.UUID, actorID int64) error {
	if uc.strictOwnership {
		existing, err := uc.questRepo.GetByID(ctx, questID)
		if err != nil {
			return err
		}
		if existing.UserID != actorID {
			return domain.ErrNotOwner
		}
	}

	if err := uc.questRepo.Delete(ctx, questID); err != nil {
		return err
	}

	uc.log.Info().Str("quest_id", questID.String()).Int64("actor_id", actorID).Msg("questionnaire deleted")
	return nil
}

// SuggestAboutRequest represents input for about-text generation
type SuggestAboutRequest struct {
	Firstname string   `json:"firstname" binding:"required"`
	City      string   `json:"city" binding:"required"`
	Hobbies   []string `json:"hobbies" binding:"required,min=1"`
}

// SuggestAbout generates candidate "about" texts for a profile
func (uc *QuestionnaireUseCase) SuggestAbout(ctx context.Context, req *SuggestAboutRequest) ([]string, error) {
	if uc.geminiClient == nil {
		return nil, gemini.ErrUnavailable
	}
	return uc.geminiClient.GenerateAbout(ctx, req.Firstname, req.Hobbies, req.City)
}
