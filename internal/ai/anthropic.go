package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"newspulse/internal/config"
)

type AnthropicClient struct {
	client      *anthropic.Client
	model       anthropic.Model
	maxTokens   int64
	temperature float64
	timeout     time.Duration
}

func NewAnthropicClient(cfg config.AIConfig) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))

	model := anthropic.Model(cfg.Model)
	if cfg.Model == "" {
		model = anthropic.ModelClaudeHaiku4_5
	}
	maxTokens := int64(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 2000
	}

	return &AnthropicClient{
		client:      &client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}
	return resp.Content[0].Text, nil
}

func (c *AnthropicClient) ModelVersion() string {
	return string(c.model)
}
