package groq

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = "llama-3.3-70b-versatile"

// Client wraps the Groq chat completion API (OpenAI-compatible)
type Client struct {
	client *openai.Client
	model  string
	logger zerolog.Logger
}

// ClientOptions holds options for creating a new Groq client
type ClientOptions struct {
	APIKey string
	Model  string
}

// NewClient creates a new Groq client
func NewClient(options ClientOptions) *Client {
	cfg := openai.DefaultConfig(options.APIKey)
	cfg.BaseURL = "https://api.groq.com/openai/v1"

	model := options.Model
	if model == "" {
		model = defaultModel
	}

	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: log.With().Str("component", "groq_client").Logger(),
	}
}

// GenerateCompletion sends a system and user prompt to Groq and returns the completion
func (c *Client) GenerateCompletion(ctx context.Context, system, prompt string) (string, error) {
	c.logger.Debug().Int("prompt_len", len(prompt)).Msg("Sending prompt to Groq")

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   800,
			Temperature: 0.5,
		},
	)

	if err != nil {
		c.logger.Error().Err(err).Msg("Groq API error")
		return "", err
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn().Msg("Groq returned empty choices")
		return "", fmt.Errorf("empty completion returned")
	}

	return resp.Choices[0].Message.Content, nil
}
