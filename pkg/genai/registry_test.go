package genai_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/memorymindai/memorymind/pkg/genai"
)

type fakeGenerator struct {
	name string
}

func (f fakeGenerator) Name() string { return f.name }

func (f fakeGenerator) Generate(context.Context, string) (string, error) {
	return "generated by " + f.name, nil
}

var _ = Describe("Registry", func() {
	var registry *genai.Registry

	BeforeEach(func() {
		registry = genai.NewRegistry(map[string]genai.Generator{
			"gemini": fakeGenerator{name: "gemini"},
			"openai": fakeGenerator{name: "openai"},
		}, "gemini")
	})

	It("returns the named generator", func() {
		gen, err := registry.Generator("openai")
		Expect(err).NotTo(HaveOccurred())
		Expect(gen.Name()).To(Equal("openai"))
	})

	It("falls back to the default for an empty name", func() {
		gen, err := registry.Generator("")
		Expect(err).NotTo(HaveOccurred())
		Expect(gen.Name()).To(Equal("gemini"))
	})

	It("returns ErrNotConfigured for an unknown provider", func() {
		_, err := registry.Generator("anthropic")
		Expect(err).To(MatchError(genai.ErrNotConfigured))
	})

	It("lists configured providers", func() {
		Expect(registry.Providers()).To(ConsistOf("gemini", "openai"))
	})
})

var _ = Describe("errors", func() {
	It("prefixes transport errors with the generation failure message", func() {
		err := &genai.TransportError{Provider: "gemini", Err: errors.New("status 500")}
		Expect(err.Error()).To(Equal("generation failed: status 500"))
	})

	It("unwraps transport errors", func() {
		inner := errors.New("connection refused")
		err := &genai.TransportError{Provider: "gemini", Err: inner}
		Expect(errors.Is(err, inner)).To(BeTrue())
	})

	It("truncates the body carried by a malformed response error", func() {
		body := make([]byte, 2048)
		for i := range body {
			body[i] = 'x'
		}

		err := genai.NewMalformedResponseError("gemini", errors.New("bad json"), body)

		Expect(err.Body).To(HaveLen(512))
		Expect(err.Error()).To(ContainSubstring("malformed response"))
	})
})
