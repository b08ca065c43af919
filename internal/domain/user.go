package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	BirthYear *int      `gorm:"type:smallint" json:"birth_year,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone  string `json:"timezone" validate:"required,timezone"`
	BirthYear *int   `json:"birth_year,omitempty" validate:"omitempty,min=1900,max=2100"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Timezone  string    `json:"timezone"`
	BirthYear *int      `json:"birth_year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Timezone:  u.Timezone,
		BirthYear: u.BirthYear,
		CreatedAt: u.CreatedAt,
	}
}

// Profile derives the optional drift-input profile from the user record.
// Returns nil when no demographic data is known.
func (u *User) Profile(now time.Time) *RiskProfile {
	if u.BirthYear == nil {
		return nil
	}
	return &RiskProfile{Age: now.Year() - *u.BirthYear}
}
