package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"newspulse/internal/config"
)

type OpenAIClient struct {
	client      *openai.Client
	model       openai.ChatModel
	temperature float64
	timeout     time.Duration
}

func NewOpenAIClient(cfg config.AIConfig) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(cfg.APIKey))

	model := openai.ChatModel(cfg.Model)
	if cfg.Model == "" {
		model = openai.ChatModelGPT4oMini
	}

	return &OpenAIClient{
		client:      &client,
		model:       model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(c.temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) ModelVersion() string {
	return string(c.model)
}
