package genai_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/memorymindai/memorymind/pkg/genai"
	"github.com/memorymindai/memorymind/pkg/graph"
)

var _ = Describe("BuildPrompt", func() {
	It("omits context blocks when nothing is known", func() {
		prompt := genai.BuildPrompt(graph.NewProfile(), nil, "hello?")

		Expect(prompt).NotTo(ContainSubstring("USER CONTEXT:"))
		Expect(prompt).NotTo(ContainSubstring("RELEVANT MEMORIES:"))
		Expect(prompt).To(HaveSuffix("Question: hello?"))
	})

	It("includes profile fields that are set", func() {
		profile := graph.NewProfile()
		name := "Alice"
		profile.Name = &name
		profile.Interests = []string{"go", "espresso"}
		profile.Goals = []graph.PersonalGoal{{Goal: "run a marathon", Progress: 0.25}}

		prompt := genai.BuildPrompt(profile, nil, "what next?")

		Expect(prompt).To(ContainSubstring("USER CONTEXT:"))
		Expect(prompt).To(ContainSubstring("Name: Alice"))
		Expect(prompt).To(ContainSubstring("Interests: go, espresso"))
		Expect(prompt).To(ContainSubstring("- run a marathon (25% complete)"))
	})

	It("lists retrieved memories with their node type", func() {
		memories := []graph.MemoryNode{
			{Content: "likes espresso", NodeType: graph.NodePreference},
			{Content: "works in robotics", NodeType: graph.NodeFact},
		}

		prompt := genai.BuildPrompt(graph.NewProfile(), memories, "coffee?")

		Expect(prompt).To(ContainSubstring("RELEVANT MEMORIES:"))
		Expect(prompt).To(ContainSubstring("- likes espresso (preference)"))
		Expect(prompt).To(ContainSubstring("- works in robotics (fact)"))
	})

	It("keeps the question verbatim at the end", func() {
		prompt := genai.BuildPrompt(graph.NewProfile(), nil, "What's my name?")
		Expect(prompt).To(HaveSuffix("Question: What's my name?"))
	})
})
