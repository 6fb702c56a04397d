package repository

import (
	"errors"

	"gorm.io/gorm"

	"starthobby-backend/internal/db"
	"starthobby-backend/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetProfile(userID uint) (*model.UserProfile, error)
	GetBadges(userID uint) ([]model.Badge, error)
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) CreateUser(user *model.User) error {
	return db.GetDB().Create(user).Error
}

func (r *userRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	err := db.GetDB().Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile joins the user with progress and membership. Progress and
// membership are optional, hence the LEFT JOINs.
func (r *userRepository) GetProfile(userID uint) (*model.UserProfile, error) {
	var profile model.UserProfile
	result := db.GetDB().Raw(`
		SELECT u.user_id, u.username, u.email,
		       COALESCE(up.points, 0) AS points,
		       COALESCE(up.xp, 0) AS xp,
		       COALESCE(up.current_streak_days, 0) AS current_streak_days,
		       up.last_login_date,
		       COALESCE(m.membership_id, 0) AS membership_id,
		       COALESCE(m.color_name, '') AS color_name,
		       COALESCE(m.min_xp, 0) AS min_xp
		FROM users u
		LEFT JOIN user_progresses up ON up.user_id = u.user_id
		LEFT JOIN memberships m ON m.membership_id = up.membership_id
		WHERE u.user_id = ?`, userID).Scan(&profile)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return &profile, nil
}

func (r *userRepository) GetBadges(userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := db.GetDB().Raw(`
		SELECT b.badge_id, b.name, b.description
		FROM user_badges ub
		JOIN badges b ON b.badge_id = ub.badge_id
		WHERE ub.user_id = ?`, userID).Scan(&badges).Error
	return badges, err
}
