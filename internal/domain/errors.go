package domain

import "errors"

var (
	// ErrProfileNotFound marks an uninitialized profile, a normal state the
	// read paths must distinguish from store failures.
	ErrProfileNotFound = errors.New("restaurant profile not found")

	ErrItemNotFound = errors.New("menu item not found")

	ErrMissingFields = errors.New("name, description, price and category are required")
)
