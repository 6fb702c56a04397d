package model

import "time"

type User struct {
	ID        uint      `json:"user_id" gorm:"primaryKey;column:user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"password,omitempty"` // Exclude from JSON responses
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserProgress struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	UserID            uint       `json:"user_id" gorm:"column:user_id;not null;uniqueIndex"`
	MembershipID      uint       `json:"membership_id" gorm:"column:membership_id"`
	Points            int        `json:"points"`
	XP                int        `json:"xp" gorm:"column:xp"`
	CurrentStreakDays int        `json:"current_streak_days"`
	LastLoginDate     *time.Time `json:"last_login_date"`
}

type Membership struct {
	ID        uint   `json:"membership_id" gorm:"primaryKey;column:membership_id"`
	ColorName string `json:"color_name"`
	MinXP     int    `json:"min_xp" gorm:"column:min_xp"`
}

type Badge struct {
	ID          uint   `json:"badge_id" gorm:"primaryKey;column:badge_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UserBadge struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	UserID  uint `json:"user_id" gorm:"column:user_id;not null"`
	BadgeID uint `json:"badge_id" gorm:"column:badge_id;not null"`
}

type Quiz struct {
	ID          uint       `json:"quiz_id" gorm:"primaryKey;column:quiz_id"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}

type Question struct {
	ID      uint     `json:"question_id" gorm:"primaryKey;column:question_id"`
	QuizID  uint     `json:"quiz_id" gorm:"column:quiz_id;not null"`
	Text    string   `json:"question_text" gorm:"column:question_text;not null"`
	Options []Option `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
}

type Option struct {
	ID         uint   `json:"option_id" gorm:"primaryKey;column:option_id"`
	QuestionID uint   `json:"question_id" gorm:"column:question_id;not null"`
	Text       string `json:"option_text" gorm:"column:option_text;not null"`
}

// Recommendation is one persisted evaluation result. Strengths and
// SuggestedHobbies are stored as JSON-encoded text blobs. Rows are
// immutable once written.
type Recommendation struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	EvaluationID       string    `json:"evaluation_id" gorm:"not null"`
	UserID             uint      `json:"user_id" gorm:"column:user_id;not null"`
	PersonalityType    string    `json:"personality_type" gorm:"not null"`
	PersonalitySummary string    `json:"personality_summary"`
	Strengths          string    `json:"strengths"`
	SuggestedHobbies   string    `json:"suggested_hobbies"`
	GeneratedAt        time.Time `json:"generated_at"`
	CreatedAt          time.Time `json:"created_at"`
}

// QuizTreeRow is one flat row of the quiz/question/option join, ordered
// by (question_id, option_id) by the query that produces it.
type QuizTreeRow struct {
	QuizID       uint   `json:"quiz_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	QuestionID   uint   `json:"question_id"`
	QuestionText string `json:"question_text"`
	OptionID     uint   `json:"option_id"`
	OptionText   string `json:"option_text"`
}

// QuizTree is the nested quiz structure returned to clients.
type QuizTree struct {
	QuizID      uint           `json:"quiz_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuestionNode `json:"questions"`
}

type QuestionNode struct {
	QuestionID   uint         `json:"question_id"`
	QuestionText string       `json:"question_text"`
	Options      []OptionNode `json:"options"`
}

type OptionNode struct {
	OptionID   uint   `json:"option_id"`
	OptionText string `json:"option_text"`
}

// SubmittedAnswer is one (question, selected option) pair from the
// client. Its identifiers are not trusted to be internally consistent.
type SubmittedAnswer struct {
	QuestionID       uint `json:"question_id" binding:"required"`
	SelectedOptionID uint `json:"selected_option_id" binding:"required"`
}

// QAPair is a submitted answer resolved to authoritative text.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type HobbySuggestion struct {
	Hobby  string `json:"hobby"`
	Reason string `json:"reason"`
}

// RecommendationResult is a validated engine reply, stamped locally.
type RecommendationResult struct {
	PersonalityType    string            `json:"personality_type"`
	PersonalitySummary string            `json:"personality_summary"`
	Strengths          []string          `json:"strengths"`
	SuggestedHobbies   []HobbySuggestion `json:"suggested_hobbies"`
	GeneratedAt        time.Time         `json:"generated_at"`
}

// SaveRecommendationRequest carries caller-supplied recommendation
// fields; hobbies and reasons are parallel sequences.
type SaveRecommendationRequest struct {
	PersonalityType    string   `json:"personality_type" binding:"required"`
	PersonalitySummary string   `json:"personality_summary" binding:"required"`
	Strengths          []string `json:"strengths" binding:"required"`
	SuggestedHobbies   []string `json:"suggested_hobbies" binding:"required"`
	Reasons            []string `json:"reasons"`
}

// UserProfile is the user row joined with progress and membership.
type UserProfile struct {
	UserID            uint       `json:"user_id"`
	Username          string     `json:"username"`
	Email             string     `json:"email"`
	Points            int        `json:"points"`
	XP                int        `json:"xp"`
	CurrentStreakDays int        `json:"current_streak_days"`
	LastLoginDate     *time.Time `json:"last_login_date"`
	MembershipID      uint       `json:"membership_id"`
	ColorName         string     `json:"color_name"`
	MinXP             int        `json:"min_xp"`
}
