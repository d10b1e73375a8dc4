package models

type Tag struct {
	ID    uint   `json:"id" gorm:"primarykey"`
	Name  string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Posts []Post `json:"posts,omitempty" gorm:"many2many:posts_tags;"`
}
