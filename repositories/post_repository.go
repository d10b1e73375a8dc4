package repositories

import (
	"blogly/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	Update(post *models.Post) error
	ReplaceTags(post *models.Post, tags []models.Tag) error
	Delete(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").Preload("Tags").First(&post, id).Error
	return &post, err
}

// Update never touches CreatedAt or the tag set; tags go through ReplaceTags.
func (r *postRepository) Update(post *models.Post) error {
	return r.db.Omit("CreatedAt", clause.Associations).Save(post).Error
}

// ReplaceTags swaps the post's tag set for the given one. Clear and rebuild
// happen inside a single transaction so no empty-tag state is observable.
func (r *postRepository) ReplaceTags(post *models.Post, tags []models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(post).Association("Tags").Replace(&tags)
	})
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).
			Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
