package llm

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/daily-lab/todolite/pkg/domain/interfaces"
)

// Fixed generation parameters for the insight relay
const (
	InsightModel       = "gpt-4o-mini"
	InsightTemperature = 0.7
)

//go:embed prompt/insight_system.md
var insightSystemPrompt string

var insightUserPrompt = template.Must(template.New("insight_user").Parse(
	"Here is my task list:\n\n{{ .Tasks }}\n\nPlease give me insights on how to approach it.",
))

// Summarizer relays a task list to a chat-completion model and returns
// the reply verbatim. No retry, no timeout beyond the request context.
type Summarizer struct {
	llmClient gollem.LLMClient
}

var _ interfaces.TaskSummarizer = &Summarizer{}

// New creates a Summarizer on top of the given LLM client
func New(llmClient gollem.LLMClient) *Summarizer {
	return &Summarizer{llmClient: llmClient}
}

// Summarize joins tasks into a bullet block, substitutes it into the fixed
// prompt template and returns the model's textual reply.
func (s *Summarizer) Summarize(ctx context.Context, tasks []string) (string, error) {
	prompt, err := buildUserPrompt(tasks)
	if err != nil {
		return "", err
	}

	agent := gollem.New(s.llmClient,
		gollem.WithSystemPrompt(insightSystemPrompt),
	)

	resp, err := agent.Execute(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to execute insight prompt",
			goerr.V("task_count", len(tasks)),
		)
	}

	text := strings.TrimSpace(strings.Join(resp.Texts, "\n"))
	if text == "" {
		return "", goerr.New("model returned empty response")
	}

	return text, nil
}

func buildUserPrompt(tasks []string) (string, error) {
	var bullets strings.Builder
	for _, task := range tasks {
		bullets.WriteString("- ")
		bullets.WriteString(task)
		bullets.WriteString("\n")
	}

	var buf bytes.Buffer
	data := struct{ Tasks string }{Tasks: strings.TrimRight(bullets.String(), "\n")}
	if err := insightUserPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to render insight prompt")
	}

	return buf.String(), nil
}
