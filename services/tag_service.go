package services

import (
	"errors"

	"blogly/models"
	"blogly/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	ListTags() ([]models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
	CreateTag(req models.TagRequest) (*models.Tag, error)
	RenameTag(id uint, req models.TagRequest) (*models.Tag, error)
	DeleteTag(id uint) error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) ListTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "tag not found"}
		}
		return nil, err
	}
	return tag, nil
}

func (s *tagService) CreateTag(req models.TagRequest) (*models.Tag, error) {
	tag := &models.Tag{Name: req.Name}

	if err := s.tagRepo.Create(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "tag already exists"}
		}
		return nil, err
	}

	return tag, nil
}

// RenameTag replaces the name outright, unlike the blank-keeps policy on
// user and post edits.
func (s *tagService) RenameTag(id uint, req models.TagRequest) (*models.Tag, error) {
	tag, err := s.GetTag(id)
	if err != nil {
		return nil, err
	}

	tag.Name = req.Name
	if err := s.tagRepo.Update(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "tag already exists"}
		}
		return nil, err
	}

	return tag, nil
}

func (s *tagService) DeleteTag(id uint) error {
	if _, err := s.GetTag(id); err != nil {
		return err
	}
	return s.tagRepo.Delete(id)
}
