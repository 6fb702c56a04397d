package service

import (
	"starthobby-backend/internal/model"
	"starthobby-backend/internal/repository"
)

type UserService interface {
	GetProfile(userID uint) (*model.UserProfile, error)
	GetBadges(userID uint) ([]model.Badge, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(userID uint) (*model.UserProfile, error) {
	return s.userRepo.GetProfile(userID)
}

func (s *userService) GetBadges(userID uint) ([]model.Badge, error) {
	return s.userRepo.GetBadges(userID)
}
