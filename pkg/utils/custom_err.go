package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrDatabaseError      = errors.New("database error")
	ErrCorruptRecord      = errors.New("stored record is invalid")

	ErrInvalidMoodValue = errors.New("mood value must be between 1 and 10")
	ErrInvalidMonth     = errors.New("month must be between 0 and 11")
	ErrInvalidYear      = errors.New("year must be between 1 and 9999")
	ErrBlankTrigger     = errors.New("trigger must not be blank")
	ErrDuplicateTrigger = errors.New("trigger already exists")
)
