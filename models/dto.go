package models

type CreateUserRequest struct {
	FirstName string `form:"first_name" validate:"required,max=50"`
	LastName  string `form:"last_name" validate:"required,max=50"`
	ImageURL  string `form:"image_url" validate:"max=255"`
}

// UpdateUserRequest carries a partial field set: an empty field keeps the
// stored value, so none of the fields are required.
type UpdateUserRequest struct {
	FirstName string `form:"first_name" validate:"max=50"`
	LastName  string `form:"last_name" validate:"max=50"`
	ImageURL  string `form:"image_url" validate:"max=255"`
}

type CreatePostRequest struct {
	Title   string   `form:"title" validate:"required,max=100"`
	Content string   `form:"content" validate:"required,max=1000"`
	Tags    []string `form:"tag"`
}

type UpdatePostRequest struct {
	Title   string   `form:"title" validate:"max=100"`
	Content string   `form:"content" validate:"max=1000"`
	Tags    []string `form:"tag"`
}

type TagRequest struct {
	Name string `form:"name" validate:"required,max=100"`
}
