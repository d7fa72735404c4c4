package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameTaken is returned when a category with the same name
	// already exists.
	ErrCategoryNameTaken = errors.New("category name already exists")
)

// Category error codes.
const (
	ErrCodeCategoryNotFound  Code = "CAT-010001"
	ErrCodeCategoryNameTaken Code = "CAT-010002"
)
