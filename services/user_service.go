package services

import (
	"errors"

	"blogly/models"
	"blogly/repositories"

	"gorm.io/gorm"
)

type UserService interface {
	ListUsers() ([]models.User, error)
	GetUser(id uint) (*models.User, error)
	CreateUser(req models.CreateUserRequest) (*models.User, error)
	UpdateUser(id uint, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ImageURL:  imageURL,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "a user with that name already exists"}
		}
		return nil, err
	}

	return user, nil
}

// UpdateUser applies a partial update: every field submitted empty keeps
// the stored value. There is no way to clear a field through an edit.
func (s *userService) UpdateUser(id uint, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.ImageURL != "" {
		user.ImageURL = req.ImageURL
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "a user with that name already exists"}
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) DeleteUser(id uint) error {
	if _, err := s.GetUser(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}
