package domain

import "errors"

var (
	ErrInvalidDate      = errors.New("date must be in DD.MM.YYYY format")
	ErrInvalidTime      = errors.New("time must be in HH:MM format")
	ErrEndNotAfterStart = errors.New("end time must be later than start time")
	ErrReportNotFound   = errors.New("report not found")
	ErrSessionNotFound  = errors.New("session not found")
)
