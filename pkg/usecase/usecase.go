package usecase

import (
	"github.com/daily-lab/todolite/pkg/domain/interfaces"
)

type UseCases struct {
	repo       interfaces.Repository
	summarizer interfaces.TaskSummarizer

	Todo    *TodoUseCase
	Insight *InsightUseCase
}

type Option func(*UseCases)

func WithSummarizer(s interfaces.TaskSummarizer) Option {
	return func(uc *UseCases) {
		uc.summarizer = s
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Todo = NewTodoUseCase(repo)
	uc.Insight = NewInsightUseCase(uc.summarizer)

	return uc
}
