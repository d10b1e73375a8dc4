package models

// PostTag mirrors the posts_tags join table. Rows live only while both
// sides exist; cascade deletes go through this model.
type PostTag struct {
	PostID uint `json:"post_id" gorm:"primaryKey"`
	TagID  uint `json:"tag_id" gorm:"primaryKey"`
}

func (PostTag) TableName() string {
	return "posts_tags"
}
