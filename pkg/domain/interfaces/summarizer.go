package interfaces

import "context"

// TaskSummarizer forwards a task list to a chat-completion model and
// returns its textual reply verbatim. Implementations must not retry.
type TaskSummarizer interface {
	Summarize(ctx context.Context, tasks []string) (string, error)
}
