package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/daily-lab/todolite/pkg/domain/interfaces"
)

// InsightUseCase forwards a task list to the summarizer and relays its
// free-text reply. Stateless: nothing is retained across invocations.
type InsightUseCase struct {
	summarizer interfaces.TaskSummarizer
}

// NewInsightUseCase creates a new InsightUseCase
func NewInsightUseCase(summarizer interfaces.TaskSummarizer) *InsightUseCase {
	return &InsightUseCase{summarizer: summarizer}
}

// GenerateInsights returns the model's reply for the given tasks. An empty
// task list is rejected before the summarizer is invoked.
func (uc *InsightUseCase) GenerateInsights(ctx context.Context, tasks []string) (string, error) {
	if len(tasks) == 0 {
		return "", ErrEmptyTaskList
	}
	if uc.summarizer == nil {
		return "", ErrSummarizerUnavailable
	}

	insights, err := uc.summarizer.Summarize(ctx, tasks)
	if err != nil {
		return "", goerr.Wrap(err, "failed to summarize tasks", goerr.V("task_count", len(tasks)))
	}

	return insights, nil
}
