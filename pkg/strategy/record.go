package strategy

// Record is a flat, serializable view of a Strategy, suitable for storing
// in conversation logs and returning over the wire.
type Record struct {
	Kind                Kind     `json:"kind"`
	Confidence          float32  `json:"confidence,omitempty"`
	Sources             []string `json:"sources,omitempty"`
	Question            string   `json:"question,omitempty"`
	Rationale           string   `json:"rationale,omitempty"`
	KnownInfo           string   `json:"known_info,omitempty"`
	ClarificationNeeded string   `json:"clarification_needed,omitempty"`
	Suggestion          string   `json:"suggestion,omitempty"`
}

// RecordOf flattens a Strategy into a Record.
func RecordOf(s Strategy) Record {
	switch v := s.(type) {
	case ConfidentAnswer:
		return Record{Kind: v.Kind(), Confidence: v.Confidence, Sources: v.Sources}
	case InquiryFirst:
		return Record{Kind: v.Kind(), Question: v.Question, Rationale: v.Rationale}
	case PartialAnswer:
		return Record{Kind: v.Kind(), KnownInfo: v.KnownInfo, ClarificationNeeded: v.ClarificationNeeded}
	case LearningOpportunity:
		return Record{Kind: v.Kind(), Suggestion: v.Suggestion}
	default:
		return Record{}
	}
}
