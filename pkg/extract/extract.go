// Package extract turns raw message text into candidate facts.
//
// Extraction is a deterministic pattern-matching heuristic, not a learned
// model: each rule is checked independently in a fixed order, so a message
// can yield zero, one, or several facts and the output order follows rule
// order rather than position in the input. Every matched rule currently
// marks its fact as worth remembering; there is no rejection path yet.
package extract

import (
	"strings"

	"github.com/memorymindai/memorymind/pkg/graph"
)

const namePhrase = "my name is"

// trailingPunctuation is stripped from the token following the name phrase.
const trailingPunctuation = ".,!?"

// Facts extracts candidate facts from a raw user message. Stateless and
// total: any input produces a well-formed (possibly empty) fact list.
func Facts(message string) []graph.ExtractedFact {
	lower := strings.ToLower(message)
	var facts []graph.ExtractedFact

	if name, ok := nameAfterPhrase(message, lower); ok {
		facts = append(facts, graph.ExtractedFact{
			Fact:           "User's name is " + name,
			Confidence:     0.9,
			FactType:       graph.FactPersonalInfo,
			ShouldRemember: true,
		})
	}

	if strings.Contains(lower, "i work") || strings.Contains(lower, "i'm a") {
		facts = append(facts, graph.ExtractedFact{
			Fact:           message,
			Confidence:     0.7,
			FactType:       graph.FactPersonalInfo,
			ShouldRemember: true,
		})
	}

	if strings.Contains(lower, "i like") || strings.Contains(lower, "i prefer") {
		facts = append(facts, graph.ExtractedFact{
			Fact:           message,
			Confidence:     0.8,
			FactType:       graph.FactPreference,
			ShouldRemember: true,
		})
	}

	if strings.Contains(lower, "my goal") || strings.Contains(lower, "i want to") {
		facts = append(facts, graph.ExtractedFact{
			Fact:           message,
			Confidence:     0.8,
			FactType:       graph.FactGoal,
			ShouldRemember: true,
		})
	}

	return facts
}

// nameAfterPhrase pulls the token immediately following "my name is" out of
// the original-cased message, stripping trailing punctuation. Returns false
// when the phrase is absent or nothing follows it.
func nameAfterPhrase(message, lower string) (string, bool) {
	idx := strings.Index(lower, namePhrase)
	if idx < 0 {
		return "", false
	}

	rest := message[idx+len(namePhrase):]
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", false
	}

	name := strings.TrimRight(fields[0], trailingPunctuation)
	if name == "" {
		return "", false
	}

	return name, true
}
