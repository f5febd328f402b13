// Package openai implements genai.Generator on the OpenAI chat API.
package openai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/memorymindai/memorymind/pkg/genai"
)

const defaultModel = openai.GPT4oMini

// Client implements genai.Generator using the go-openai SDK.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates an OpenAI-backed generator. An empty baseURL or model
// selects the SDK defaults.
func NewClient(apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, genai.ErrNotConfigured
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if model == "" {
		model = defaultModel
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

// Name implements genai.Generator.
func (c *Client) Name() string { return "openai" }

// Generate implements genai.Generator.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 401 {
			return "", genai.ErrNotConfigured
		}
		return "", &genai.TransportError{Provider: c.Name(), Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", genai.NewMalformedResponseError(
			c.Name(), fmt.Errorf("no choices in response"), nil)
	}

	return resp.Choices[0].Message.Content, nil
}
