package order

import "errors"

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidNotes  = errors.New("invalid notes")
)
