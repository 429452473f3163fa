package domain

import (
	"time"

	"github.com/google/uuid"
)

// Closed enumerations. The literal values are part of the API contract
// and must not be changed.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

const (
	GoalFriendship   = "Дружба"
	GoalFlirt        = "Флирт"
	GoalRelationship = "Отношения"
	GoalSerious      = "Серьёзные отношения"
)

const (
	BodyTypeThin     = "Худое"
	BodyTypeAverage  = "Среднее"
	BodyTypeAthletic = "Спортивное"
	BodyTypeFull     = "Полное"
)

type Questionnaire struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Firstname string    `json:"firstname" db:"firstname"`
	Lastname  string    `json:"lastname" db:"lastname"`
	Gender    string    `json:"gender" db:"gender"`
	Photo     string    `json:"photo" db:"photo"`
	Country   string    `json:"country" db:"country"`
	City      string    `json:"city" db:"city"`
	About     string    `json:"about" db:"about"`
	Height    int       `json:"height" db:"height"`
	Goals     string    `json:"goals" db:"goals"`
	BodyType  string    `json:"body_type" db:"body_type"`
	Hobbies   []Hobby   `json:"hobbies" db:"-"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

// Hobby is owned by its questionnaire and is replaced wholesale on update.
// Duplicates are allowed.
type Hobby struct {
	HobbyName string `json:"hobby_name" db:"hobby_name"`
}
