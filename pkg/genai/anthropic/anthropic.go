// Package anthropic implements genai.Generator on the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/memorymindai/memorymind/pkg/genai"
)

const (
	defaultModel = anthropic.ModelClaude3_5HaikuLatest

	maxTokens = 1024
)

// Client implements genai.Generator using the official Anthropic SDK.
type Client struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewClient creates an Anthropic-backed generator.
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, genai.ErrNotConfigured
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	m := defaultModel
	if model != "" {
		m = anthropic.Model(model)
	}

	return &Client{client: &client, model: m}, nil
}

// Name implements genai.Generator.
func (c *Client) Name() string { return "anthropic" }

// Generate implements genai.Generator.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", &genai.TransportError{Provider: c.Name(), Err: err}
	}

	for _, blockUnion := range message.Content {
		if block, ok := blockUnion.AsAny().(anthropic.TextBlock); ok {
			return block.Text, nil
		}
	}

	return "", genai.NewMalformedResponseError(
		c.Name(), fmt.Errorf("no text block in response"), nil)
}
