package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mir-dating/backend/internal/domain"
	"github.com/mir-dating/backend/internal/repository"
)

type questionnaireRepository struct {
	db *sqlx.DB
}

func NewQuestionnaireRepository(db *sqlx.DB) repository.QuestionnaireRepository {
	return &questionnaireRepository{db: db}
}

func (r *questionnaireRepository) Create(ctx context.Context, quest *domain.Questionnaire) error {
	if quest.ID == uuid.Nil {
		quest.ID = uuid.New()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO questionnaires (
			id, user_id, firstname, lastname, gender, photo,
			country, city, about, height, goals, body_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`
	err = tx.QueryRowContext(
		ctx, query,
		quest.ID, quest.UserID, quest.Firstname, quest.Lastname, quest.Gender,
		quest.Photo, quest.Country, quest.City, quest.About, quest.Height,
		quest.Goals, quest.BodyType,
	).Scan(&quest.CreatedAt)
	if err != nil {
		return err
	}

	if err := insertHobbies(ctx, tx, quest.ID, quest.Hobbies); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *questionnaireRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Questionnaire, error) {
	var quest domain.Questionnaire
	query := `SELECT * FROM questionnaires WHERE id = $1`
	err := r.db.GetContext(ctx, &quest, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuestionnaireNotFound
		}
		return nil, err
	}
	if err := r.loadHobbies(ctx, []*domain.Questionnaire{&quest}); err != nil {
		return nil, err
	}
	return &quest, nil
}

func (r *questionnaireRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Questionnaire, error) {
	var quest domain.Questionnaire
	query := `
		SELECT * FROM questionnaires
		WHERE user_id = $1
		ORDER BY created_at, id
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &quest, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuestionnaireNotFound
		}
		return nil, err
	}
	if err := r.loadHobbies(ctx, []*domain.Questionnaire{&quest}); err != nil {
		return nil, err
	}
	return &quest, nil
}

func (r *questionnaireRepository) List(ctx context.Context, limit, offset int) ([]*domain.Questionnaire, error) {
	// Non-nil so an empty page serializes as [] rather than null.
	quests := []*domain.Questionnaire{}
	// Insertion order with an id tiebreak keeps limit/offset pages stable.
	query := `
		SELECT * FROM questionnaires
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`
	if err := r.db.SelectContext(ctx, &quests, query, limit, offset); err != nil {
		return nil, err
	}
	if err := r.loadHobbies(ctx, quests); err != nil {
		return nil, err
	}
	return quests, nil
}

func (r *questionnaireRepository) Update(ctx context.Context, quest *domain.Questionnaire) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE questionnaires
		SET user_id = $1, firstname = $2, lastname = $3, gender = $4,
		    photo = $5, country = $6, city = $7, about = $8,
		    height = $9, goals = $10, body_type = $11
		WHERE id = $12
		RETURNING created_at
	`
	err = tx.QueryRowContext(
		ctx, query,
		quest.UserID, quest.Firstname, quest.Lastname, quest.Gender,
		quest.Photo, quest.Country, quest.City, quest.About, quest.Height,
		quest.Goals, quest.BodyType, quest.ID,
	).Scan(&quest.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrQuestionnaireNotFound
		}
		return err
	}

	// Hobbies are replaced wholesale, not merged.
	if _, err := tx.ExecContext(ctx, `DELETE FROM questionnaire_hobbies WHERE questionnaire_id = $1`, quest.ID); err != nil {
		return err
	}
	if err := insertHobbies(ctx, tx, quest.ID, quest.Hobbies); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *questionnaireRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Hobby rows go with the questionnaire via ON DELETE CASCADE.
	result, err := r.db.ExecContext(ctx, `DELETE FROM questionnaires WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrQuestionnaireNotFound
	}
	return nil
}

func insertHobbies(ctx context.Context, tx *sqlx.Tx, questID uuid.UUID, hobbies []domain.Hobby) error {
	query := `INSERT INTO questionnaire_hobbies (questionnaire_id, hobby_name) VALUES ($1, $2)`
	for _, hobby := range hobbies {
		if _, err := tx.ExecContext(ctx, query, questID, hobby.HobbyName); err != nil {
			return err
		}
	}
	return nil
}

// loadHobbies fills the hobby collections for a batch of questionnaires
// with a single query, in insertion order.
func (r *questionnaireRepository) loadHobbies(ctx context.Context, quests []*domain.Questionnaire) error {
	if len(quests) == 0 {
		return nil
	}

	ids := make([]string, 0, len(quests))
	byID := make(map[uuid.UUID]*domain.Questionnaire, len(quests))
	for _, quest := range quests {
		quest.Hobbies = []domain.Hobby{}
		ids = append(ids, quest.ID.String())
		byID[quest.ID] = quest
	}

	query := `
		SELECT questionnaire_id, hobby_name
		FROM questionnaire_hobbies
		WHERE questionnaire_id = ANY($1::uuid[])
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var questID uuid.UUID
		var name string
		if err := rows.Scan(&questID, &name); err != nil {
			return err
		}
		if quest, ok := byID[questID]; ok {
			quest.Hobbies = append(quest.Hobbies, domain.Hobby{HobbyName: name})
		}
	}
	return rows.Err()
}
