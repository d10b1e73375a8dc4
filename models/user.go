package models

// DefaultImageURL is used for users created without a profile picture.
const DefaultImageURL = "https://icon-library.com/images/no-picture-available-icon/no-picture-available-icon-20.jpg"

type User struct {
	ID        uint   `json:"id" gorm:"primarykey"`
	FirstName string `json:"first_name" gorm:"size:50;not null;uniqueIndex:idx_users_full_name"`
	LastName  string `json:"last_name" gorm:"size:50;not null;uniqueIndex:idx_users_full_name"`
	ImageURL  string `json:"image_url" gorm:"size:255;not null"`
	Posts     []Post `json:"posts,omitempty" gorm:"foreignKey:UserID"`
}

// FullName returns the display name used in listings and as post author.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
