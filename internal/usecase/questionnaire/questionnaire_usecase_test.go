package questionnaire

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mir-dating/backend/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuestRepo is an in-memory QuestionnaireRepository that mirrors the
// postgres implementation's contract: generated ids, insertion order,
// wholesale hobby replacement, sentinel errors.
type fakeQuestRepo struct {
	quests []*domain.Questionnaire
}

func (r *fakeQuestRepo) Create(_ context.Context, quest *domain.Questionnaire) error {
	if quest.ID == uuid.Nil {
		quest.ID = uuid.New()
	}
	quest.CreatedAt = time.Now()
	stored := *quest
	stored.Hobbies = append([]domain.Hobby(nil), quest.Hobbies...)
	r.quests = append(r.quests, &stored)
	return nil
}

func (r *fakeQuestRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Questionnaire, error) {
	for _, quest := range r.quests {
		if quest.ID == id {
			copied := *quest
			return &copied, nil
		}
	}
	return nil, domain.ErrQuestionnaireNotFound
}

func (r *fakeQuestRepo) GetByUserID(_ context.Context, userID int64) (*domain.Questionnaire, error) {
	for _, quest := range r.quests {
		if quest.UserID == userID {
			copied := *quest
			return &copied, nil
		}
	}
	return nil, domain.ErrQuestionnaireNotFound
}

func (r *fakeQuestRepo) List(_ context.Context, limit, offset int) ([]*domain.Questionnaire, error) {
	// sqlx leaves the destination slice nil when no rows match
	if offset >= len(r.quests) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.quests) {
		end = len(r.quests)
	}
	page := make([]*domain.Questionnaire, 0, end-offset)
	for _, quest := range r.quests[offset:end] {
		copied := *quest
		page = append(page, &copied)
	}
	return page, nil
}

func (r *fakeQuestRepo) Update(_ context.Context, quest *domain.Questionnaire) error {
	for i, stored := range r.quests {
		if stored.ID == quest.ID {
			quest.CreatedAt = stored.CreatedAt
			replaced := *quest
			replaced.Hobbies = append([]domain.Hobby(nil), quest.Hobbies...)
			r.quests[i] = &replaced
			return nil
		}
	}
	return domain.ErrQuestionnaireNotFound
}

func (r *fakeQuestRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, stored := range r.quests {
		if stored.ID == id {
			r.quests = append(r.quests[:i], r.quests[i+1:]...)
			return nil
		}
	}
	return domain.ErrQuestionnaireNotFound
}

func intPtr(v int) *int { return &v }

func idPtr(v int64) *int64 { return &v }

func validRequest(userID int64) *QuestionnaireRequest {
	return &QuestionnaireRequest{
		UserID:    userID,
		Firstname: "string",
		Lastname:  "string",
		Gender:    domain.GenderMale,
		Photo:     "string",
		Country:   "string",
		City:      "string",
		About:     "string",
		Height:    intPtr(0),
		Goals:     domain.GoalFriendship,
		BodyType:  domain.BodyTypeThin,
		Hobbies:   []HobbyRequest{{HobbyName: "string"}},
	}
}

func newUseCase(repo *fakeQuestRepo, strict bool) *QuestionnaireUseCase {
	return NewQuestionnaireUseCase(repo, nil, strict, zerolog.Nop())
}

func TestCreateEchoesFieldsAndGeneratesID(t *testing.T) {
	repo := &fakeQuestRepo{}
	uc := newUseCase(repo, false)

	quest, err := uc.Create(context.Background(), validRequest(7), nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, quest.ID)
	assert.Equal(t, int64(7), quest.UserID)
	assert.Equal(t, "string", quest.Firstname)
	assert.Equal(t, domain.GenderMale, quest.Gender)
	assert.Equal(t, 0, quest.Height)
	assert.Equal(t, domain.GoalFriendship, quest.Goals)
	assert.Equal(t, domain.BodyTypeThin, quest.BodyType)
	assert.Equal(t, []domain.Hobby{{HobbyName: "string"}}, quest.Hobbies)

	other, err := uc.Create(context.Background(), validRequest(7), nil)
	require.NoError(t, err)
	assert.NotEqual(t, quest.ID, other.ID)
}

func TestCreateTrustsPayloadUserID(t *testing.T) {
	repo := &fakeQuestRepo{}
	uc := newUseCase(repo, false)

	// Outside strict mode the payload user_id wins even with a session.
	quest, err := uc.Create(context.Background(), validRequest(7), idPtr(99))
	require.NoError(t, err)
	assert.Equal(t, int64(7), quest.UserID)
}

func TestCreateStrictOverridesUserID(t *testing.T) {
	repo := &fakeQuestRepo{}
	uc := newUseCase(repo, true)

	quest, err := uc.Create(context.Background(), validRequest(7), idPtr(99))
	require.NoError(t, err)
	assert.Equal(t, int64(99), quest.UserID)
}

func TestListPagesPartitionWithoutOverlap(t *testing.T) {
	repo := &fakeQuestRepo{}
	uc := newUseCase(repo, false)

	for i := 0; i < 10; i++ {
		_, err := uc.Create(context.Background(), validRequest(int64(i+1)), nil)
		require.NoError(t, err)
	}

	first, err := uc.List(context.Background(), 5, 0)
	require.NoError(t, err)
	second, err := uc.List(context.Background(), 5, 5)
	require.NoError(t, err)

	require.Len(t, first, 5)
	require.Len(t, second, 5)

	seen := make(map[uuid.UUID]bool)
	for _, quest := range append(first, second...) {
		assert.False(t, seen[quest.ID], "pages must be disjoint")
		seen[quest.ID] = true
	}
}

func TestListBeyondEndReturnsEmpty(t *testing.T) {
	repo := &fakeQuestRepo{}
	uc := newUseCase(repo, false)

	_, err := uc.Create(context.Background(), validRequest(1), nil)
	require.NoError(t, err)

	quests, err := uc.List(context.Background(), 10, 100)
	require.NoError(t, err)
	require.NotNil(t, quests, "empty pages must stay non-nil so they serialize as []")
	assert.Empty(t, quests)
}

func TestUpdateReplacesEverythingIncludingHobbies(t *testing.T) {
	repo := &fakeQuestRepo{}
	uc := newUseCase(repo, false)

	created, err := uc.Create(context.Background(), validRequest(1), nil)
	require.NoError(t, err)

	updated := validRequest(1)
	updated.Gender = domain.GenderFemale
	updated.Goals = domain.GoalFlirt
	updated.BodyType = domain.BodyTypeFull
	updated.Hobbies = []HobbyRequest{{HobbyName: "qwewasd"}, {HobbyName: "asidpas"}}

	quest, err := uc.Update(context.Background(), created.ID, updated, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.GenderFemale, quest.Gender)
	assert.Equal(t, domain.GoalFlirt, quest.Goals)
	assert.Equal(t, []domain.Hobby{{HobbyName: "qwewasd"}, {HobbyName: "asidpas"}}, quest.Hobbies)

	// A second update keeps only the latest hobby list, no merge.
	final := validRequest(1)
	final.Hobbies = []HobbyRequest{{HobbyName: "chess"}}
	quest, err = uc.Update(context.Background(), created.ID, final, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.Hobby{{HobbyName: "chess"}}, quest.Hobbies)

	stored, err := uc.GetByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Hobby{{HobbyName: "chess"}}, stored.Hobbies)
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	uc := newUseCase(&fakeQuestRepo{}, false)

	_, err := uc.Update(context.Background(), uuid.New(), validRequest(1), nil)
	assert.ErrorIs(t, err, domain.ErrQuestionnaireNotFound)
}

func TestUpdateStrictRejectsNonOwner(t *testing.T) {
	repo := &fakeQuestRepo{}
	uc := newUseCase(repo, true)

	created, err := uc.Create(context.Background(), validRequest(1), idPtr(1))
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, validRequest(1), idPtr(2))
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = uc.Update(context.Background(), created.ID, validRequest(1), nil)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestDeleteMakesQuestionnaireAbsent(t *testing.T) {
	repo := &fakeQuestRepo{}
	uc := newUseCase(repo, false)

	created, err := uc.Create(context.Background(), validRequest(1), nil)
	require.NoError(t, err)

	// Any authenticated user may delete outside strict mode.
	require.NoError(t, uc.Delete(context.Background(), created.ID, 2))

	_, err = uc.GetByUserID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrQuestionnaireNotFound)
}

func TestDeleteStrictRejectsNonOwner(t *testing.T) {
	repo := &fakeQuestRepo{}
	uc := newUseCase(repo, true)

	created, err := uc.Create(context.Background(), validRequest(1), idPtr(1))
	require.NoError(t, err)

	err = uc.Delete(context.Background(), created.ID, 2)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	require.NoError(t, uc.Delete(context.Background(), created.ID, 1))
}
