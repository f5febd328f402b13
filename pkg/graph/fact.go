package graph

// FactType categorizes a fact pulled out of a raw message.
type FactType string

const (
	FactPersonalInfo FactType = "personal_info"
	FactPreference   FactType = "preference"
	FactGoal         FactType = "goal"
	FactRelationship FactType = "relationship"
	FactExperience   FactType = "experience"
	FactKnowledge    FactType = "knowledge"
)

// ExtractedFact is a transient extraction result. Only facts with
// ShouldRemember set become memory nodes.
type ExtractedFact struct {
	Fact           string   `json:"fact"`
	Confidence     float32  `json:"confidence"`
	FactType       FactType `json:"fact_type"`
	ShouldRemember bool     `json:"should_remember"`
}

// NodeTypeFor maps a fact type to the node type its memory node gets.
func NodeTypeFor(t FactType) NodeType {
	switch t {
	case FactPersonalInfo:
		return NodeFact
	case FactPreference:
		return NodePreference
	case FactGoal:
		return NodeGoal
	case FactRelationship:
		return NodeRelationship
	case FactExperience:
		return NodeExperience
	case FactKnowledge:
		return NodeKnowledge
	default:
		return NodeContext
	}
}
