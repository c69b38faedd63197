package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"

	"github.com/daily-lab/todolite/pkg/service/llm"
)

// OpenAI holds configuration for the OpenAI LLM client
type OpenAI struct {
	apiKey string
}

// Flags returns CLI flags for OpenAI configuration. The API key is
// required so the process fails fast at startup when it is absent.
func (o *OpenAI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key (required)",
			Required:    true,
			Sources:     cli.EnvVars("OPENAI_API_KEY"),
			Destination: &o.apiKey,
		},
	}
}

// Configure creates a new OpenAI LLM client from the configured flags.
// Model and temperature are fixed constants of the insight relay.
func (o *OpenAI) Configure(ctx context.Context) (gollem.LLMClient, error) {
	client, err := openai.New(ctx, o.apiKey,
		openai.WithModel(llm.InsightModel),
		openai.WithTemperature(llm.InsightTemperature),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create OpenAI client")
	}

	return client, nil
}
