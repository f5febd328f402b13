// Package genai is the boundary to external text-generation services.
//
// The core hands a provider one fully-built prompt string and gets back
// generated text or a typed failure. Providers live in subpackages
// (gemini, openai, anthropic); the Registry selects among them by name.
package genai

import "context"

// Generator produces text for a single opaque prompt.
type Generator interface {
	// Name returns the canonical provider name ("gemini", "openai", "anthropic").
	Name() string

	// Generate sends the prompt and returns the generated text. Failures
	// are typed: ErrNotConfigured, *TransportError, or *MalformedResponseError.
	// Generate never retries; resubmission is the caller's choice.
	Generate(ctx context.Context, prompt string) (string, error)
}
