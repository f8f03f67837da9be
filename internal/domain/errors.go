package domain

import (
	"errors"

	"soberup/pkg/utils"
)

var (
	ErrInvalidMoodValue = utils.ErrInvalidMoodValue
	ErrInvalidMonth     = utils.ErrInvalidMonth
	ErrInvalidYear      = utils.ErrInvalidYear
	ErrBlankTrigger     = utils.ErrBlankTrigger
	ErrDuplicateTrigger = utils.ErrDuplicateTrigger
	ErrUnknownRole      = errors.New("unknown role")
)
