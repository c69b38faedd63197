package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrEmptyTaskList         = errors.New("empty task list")
	ErrSummarizerUnavailable = errors.New("summarizer is not configured")
)
