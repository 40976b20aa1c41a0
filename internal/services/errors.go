package services

import "errors"

// ErrNotFound is matched (via errors.Is) by every "entity does not exist" error,
// including lookups that fail because the entity belongs to another user.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound     error = &notFoundError{msg: "User does not exist"}
	ErrCategoryNotFound error = &notFoundError{msg: "Category does not exist"}
	ErrBlogNotFound     error = &notFoundError{msg: "Blog does not exist"}

	ErrEmailTaken = errors.New("email already in use")
)

type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string { return e.msg }

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }
