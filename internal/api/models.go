package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/glossa-app/glossa-api/internal/domain"
	"github.com/glossa-app/glossa-api/internal/service/training"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    string    `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at,omitempty"`
}

// SubmitAnswerRequest represents the request body for grading a word.
type SubmitAnswerRequest struct {
	Grade string `json:"grade" validate:"required,oneof=again hard good easy"`
}

// ProgressResponse represents one word's scheduling state.
type ProgressResponse struct {
	WordID        string     `json:"word_id"`
	State         string     `json:"state"`
	Stability     float64    `json:"stability"`
	Difficulty    float64    `json:"difficulty"`
	ElapsedDays   int        `json:"elapsed_days"`
	ScheduledDays int        `json:"scheduled_days"`
	Due           time.Time  `json:"due"`
	LastReview    *time.Time `json:"last_review,omitempty"`
	AssignedDate  *time.Time `json:"assigned_date,omitempty"`
	Repetitions   int        `json:"repetitions"`
	Lapses        int        `json:"lapses"`
	Seen          bool       `json:"seen"`
	Learned       bool       `json:"learned"`
}

// StudyWordResponse represents one entry of today's study set.
type StudyWordResponse struct {
	WordID   string           `json:"word_id"`
	Greek    string           `json:"gr"`
	English  string           `json:"en"`
	Russian  string           `json:"ru"`
	Progress ProgressResponse `json:"progress"`
}

// StudySetResponse is the response for the daily study set endpoint.
type StudySetResponse struct {
	Words []StudyWordResponse `json:"words"`
	Count int                 `json:"count"`
}

// TrimResponse is the response for the assignment trim endpoint.
type TrimResponse struct {
	Trimmed []string `json:"trimmed"`
	Count   int      `json:"count"`
}

// WordGroupResponse represents one vocabulary group.
type WordGroupResponse struct {
	ID      int    `json:"id"`
	Version int    `json:"version"`
	NameEN  string `json:"name_en"`
	NameRU  string `json:"name_ru"`
}

// WordResponse represents a single vocabulary word.
type WordResponse struct {
	WordID  string `json:"word_id"`
	Greek   string `json:"gr"`
	English string `json:"en"`
	Russian string `json:"ru"`
}

// progressToResponse converts a domain progress record to its API shape.
func progressToResponse(p *domain.WordProgress) ProgressResponse {
	return ProgressResponse{
		WordID:        p.WordID,
		State:         string(p.State),
		Stability:     p.Stability,
		Difficulty:    p.Difficulty,
		ElapsedDays:   p.ElapsedDays,
		ScheduledDays: p.ScheduledDays,
		Due:           p.Due,
		LastReview:    p.LastReview,
		AssignedDate:  p.AssignedDate,
		Repetitions:   p.Repetitions,
		Lapses:        p.Lapses,
		Seen:          p.Seen,
		Learned:       p.Learned,
	}
}

// studyItemToResponse converts one study item to its API shape.
func studyItemToResponse(item training.StudyItem) StudyWordResponse {
	return StudyWordResponse{
		WordID:   item.Word.CompositeID(),
		Greek:    item.Word.Greek,
		English:  item.Word.English,
		Russian:  item.Word.Russian,
		Progress: progressToResponse(item.Progress),
	}
}
