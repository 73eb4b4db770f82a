package service

import "errors"

var (
	ErrNameIsNotSpecified   = errors.New("greeting name is not specified")
	ErrFormatIsNotSpecified = errors.New("greeting format is not specified")

	ErrInvalidDataProvided = errors.New("invalid data provided")
)
