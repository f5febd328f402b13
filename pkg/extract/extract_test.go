package extract_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/memorymindai/memorymind/pkg/extract"
	"github.com/memorymindai/memorymind/pkg/graph"
)

var _ = Describe("Facts", func() {
	It("returns no facts for small talk", func() {
		Expect(extract.Facts("what's the weather today?")).To(BeEmpty())
	})

	It("extracts a name with original casing and stripped punctuation", func() {
		facts := extract.Facts("Hi, my name is Alice.")

		Expect(facts).To(HaveLen(1))
		Expect(facts[0].Fact).To(Equal("User's name is Alice"))
		Expect(facts[0].Confidence).To(Equal(float32(0.9)))
		Expect(facts[0].FactType).To(Equal(graph.FactPersonalInfo))
		Expect(facts[0].ShouldRemember).To(BeTrue())
	})

	It("matches the name phrase case-insensitively", func() {
		facts := extract.Facts("MY NAME IS Bob!")

		Expect(facts).To(HaveLen(1))
		Expect(facts[0].Fact).To(Equal("User's name is Bob"))
	})

	It("ignores the name phrase when nothing follows it", func() {
		Expect(extract.Facts("my name is")).To(BeEmpty())
	})

	It("extracts work statements as personal info with the full message", func() {
		message := "I work at a small robotics startup"
		facts := extract.Facts(message)

		Expect(facts).To(HaveLen(1))
		Expect(facts[0].Fact).To(Equal(message))
		Expect(facts[0].Confidence).To(Equal(float32(0.7)))
		Expect(facts[0].FactType).To(Equal(graph.FactPersonalInfo))
	})

	It("extracts preferences", func() {
		facts := extract.Facts("I prefer short answers")

		Expect(facts).To(HaveLen(1))
		Expect(facts[0].Confidence).To(Equal(float32(0.8)))
		Expect(facts[0].FactType).To(Equal(graph.FactPreference))
	})

	It("extracts goals", func() {
		facts := extract.Facts("my goal is to run a marathon")

		Expect(facts).To(HaveLen(1))
		Expect(facts[0].Confidence).To(Equal(float32(0.8)))
		Expect(facts[0].FactType).To(Equal(graph.FactGoal))
	})

	It("emits multiple facts in rule order for a compound message", func() {
		facts := extract.Facts("my name is Carol, I work in finance and I like chess")

		Expect(facts).To(HaveLen(3))
		Expect(facts[0].FactType).To(Equal(graph.FactPersonalInfo))
		Expect(facts[0].Fact).To(Equal("User's name is Carol"))
		Expect(facts[1].FactType).To(Equal(graph.FactPersonalInfo))
		Expect(facts[2].FactType).To(Equal(graph.FactPreference))
	})
})
