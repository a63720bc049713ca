package repository

import "errors"

var (
	// ErrNotFound is returned when an order or menu item id is unknown.
	ErrNotFound = errors.New("not found")
	// ErrInvalidStatus is returned when a status value is outside the
	// closed order-status enum.
	ErrInvalidStatus = errors.New("invalid status")
)
