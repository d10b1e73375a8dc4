package services

import (
	"errors"
	"time"

	"blogly/models"
	"blogly/repositories"

	"gorm.io/gorm"
)

type PostService interface {
	GetPost(id uint) (*models.Post, error)
	CreatePost(userID uint, req models.CreatePostRequest) (*models.Post, error)
	UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(id uint) (ownerID uint, err error)
}

type postService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	tagRepo  repositories.TagRepository
}

func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, tagRepo repositories.TagRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		tagRepo:  tagRepo,
	}
}

func (s *postService) GetPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) CreatePost(userID uint, req models.CreatePostRequest) (*models.Post, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}

	tags, err := s.resolveTags(req.Tags)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
		UserID:    userID,
		Tags:      tags,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return s.GetPost(post.ID)
}

// UpdatePost keeps title/content when submitted blank; the tag set is
// always replaced wholesale from the submitted selection.
func (s *postService) UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(req.Tags)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.ReplaceTags(post, tags); err != nil {
		return nil, err
	}

	return s.GetPost(id)
}

func (s *postService) DeletePost(id uint) (uint, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return 0, err
	}

	if err := s.postRepo.Delete(id); err != nil {
		return 0, err
	}

	return post.UserID, nil
}

// resolveTags maps submitted names onto existing tags. Names matching no
// tag are dropped; nothing is auto-created.
func (s *postService) resolveTags(names []string) ([]models.Tag, error) {
	tags, err := s.tagRepo.GetByNames(names)
	if err != nil {
		return nil, err
	}
	return tags, nil
}
