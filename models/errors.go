package models

// ErrorNotFound is returned when an identity does not resolve to a row.
// Handlers surface it as a rendered 404 page.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

// ErrorConflict is returned when a write violates a unique constraint.
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

// ErrorInternalServer wraps unexpected persistence failures.
type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}
