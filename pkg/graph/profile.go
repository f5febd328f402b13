package graph

import "time"

// FormalityLevel is how formal the user likes responses to be.
type FormalityLevel string

const (
	FormalityVeryCasual FormalityLevel = "very_casual"
	FormalityCasual     FormalityLevel = "casual"
	FormalityFormal     FormalityLevel = "formal"
	FormalityVeryFormal FormalityLevel = "very_formal"
)

// DetailLevel is how much detail the user wants.
type DetailLevel string

const (
	DetailBrief         DetailLevel = "brief"
	DetailModerate      DetailLevel = "moderate"
	DetailDetailed      DetailLevel = "detailed"
	DetailComprehensive DetailLevel = "comprehensive"
)

// TechnicalLevel is the user's comfort with technical depth.
type TechnicalLevel string

const (
	TechnicalBeginner     TechnicalLevel = "beginner"
	TechnicalIntermediate TechnicalLevel = "intermediate"
	TechnicalAdvanced     TechnicalLevel = "advanced"
	TechnicalExpert       TechnicalLevel = "expert"
)

// CommunicationStyle aggregates how the user prefers to be spoken to.
// Each enum defaults to a mid-range value until learned otherwise.
type CommunicationStyle struct {
	FormalityLevel   FormalityLevel `json:"formality_level"`
	DetailPreference DetailLevel    `json:"detail_preference"`
	TechnicalLevel   TechnicalLevel `json:"technical_level"`
	HumorPreference  bool           `json:"humor_preference"`
	EmojiUsage       bool           `json:"emoji_usage"`
}

// PersonalGoal is something the user is working toward.
type PersonalGoal struct {
	Goal       string     `json:"goal"`
	Category   string     `json:"category"`
	TargetDate *time.Time `json:"target_date,omitempty"`
	Progress   float32    `json:"progress"`
	Importance float32    `json:"importance"`
}

// ImportantEvent is a date that matters to the user.
type ImportantEvent struct {
	Event      string    `json:"event"`
	Date       time.Time `json:"date"`
	Category   string    `json:"category"`
	Importance float32   `json:"importance"`
}

// PersonalRelationship is a person in the user's life.
type PersonalRelationship struct {
	Name             string  `json:"name"`
	RelationshipType string  `json:"relationship_type"`
	Context          string  `json:"context"`
	Importance       float32 `json:"importance"`
}

// WorkContext captures the user's professional situation.
type WorkContext struct {
	JobTitle        *string  `json:"job_title,omitempty"`
	Company         *string  `json:"company,omitempty"`
	Industry        *string  `json:"industry,omitempty"`
	Skills          []string `json:"skills"`
	CurrentProjects []string `json:"current_projects"`
}

// ConversationPatterns aggregates observed conversational behavior.
type ConversationPatterns struct {
	QuestionTypes    map[string]uint32 `json:"question_types"`
	AvgSessionLength float32           `json:"avg_session_length"`
	CommonTopics     []string          `json:"common_topics"`
	TimePatterns     []uint32          `json:"time_patterns"`
}

// ResponsePreferences holds coarse flags about answer shape.
type ResponsePreferences struct {
	PrefersQuickAnswers         bool `json:"prefers_quick_answers"`
	PrefersDetailedExplanations bool `json:"prefers_detailed_explanations"`
	PrefersStepByStep           bool `json:"prefers_step_by_step"`
	PrefersExamples             bool `json:"prefers_examples"`
	AutopilotEnabled            bool `json:"autopilot_enabled"`
}

// Profile is everything known about the user beyond discrete memories.
type Profile struct {
	Name                *string                `json:"name,omitempty"`
	PreferredName       *string                `json:"preferred_name,omitempty"`
	CommunicationStyle  CommunicationStyle     `json:"communication_style"`
	Interests           []string               `json:"interests"`
	Goals               []PersonalGoal         `json:"goals"`
	ImportantDates      []ImportantEvent       `json:"important_dates"`
	Relationships       []PersonalRelationship `json:"relationships"`
	WorkContext         *WorkContext           `json:"work_context,omitempty"`
	KnowledgeDomains    map[string]float32     `json:"knowledge_domains"`
	ConversationHabits  ConversationPatterns   `json:"conversation_patterns"`
	ResponsePreferences ResponsePreferences    `json:"response_preferences"`
}

// NewProfile returns a profile with mid-range communication defaults.
func NewProfile() Profile {
	return Profile{
		CommunicationStyle: CommunicationStyle{
			FormalityLevel:   FormalityCasual,
			DetailPreference: DetailModerate,
			TechnicalLevel:   TechnicalIntermediate,
		},
		Interests:        make([]string, 0),
		Goals:            make([]PersonalGoal, 0),
		ImportantDates:   make([]ImportantEvent, 0),
		Relationships:    make([]PersonalRelationship, 0),
		KnowledgeDomains: make(map[string]float32),
		ConversationHabits: ConversationPatterns{
			QuestionTypes: make(map[string]uint32),
		},
	}
}

// ClampScores forces every score field on the profile back into [0, 1].
func (p *Profile) ClampScores() {
	for i := range p.Goals {
		p.Goals[i].Progress = Clamp01(p.Goals[i].Progress)
		p.Goals[i].Importance = Clamp01(p.Goals[i].Importance)
	}
	for i := range p.ImportantDates {
		p.ImportantDates[i].Importance = Clamp01(p.ImportantDates[i].Importance)
	}
	for i := range p.Relationships {
		p.Relationships[i].Importance = Clamp01(p.Relationships[i].Importance)
	}
	for domain, score := range p.KnowledgeDomains {
		p.KnowledgeDomains[domain] = Clamp01(score)
	}
}

func (p Profile) clone() Profile {
	c := p
	c.Name = cloneStringPtr(p.Name)
	c.PreferredName = cloneStringPtr(p.PreferredName)
	c.Interests = append([]string(nil), p.Interests...)

	c.Goals = make([]PersonalGoal, len(p.Goals))
	for i, goal := range p.Goals {
		c.Goals[i] = goal
		if goal.TargetDate != nil {
			date := *goal.TargetDate
			c.Goals[i].TargetDate = &date
		}
	}

	c.ImportantDates = append([]ImportantEvent(nil), p.ImportantDates...)
	c.Relationships = append([]PersonalRelationship(nil), p.Relationships...)

	if p.WorkContext != nil {
		wc := *p.WorkContext
		wc.JobTitle = cloneStringPtr(p.WorkContext.JobTitle)
		wc.Company = cloneStringPtr(p.WorkContext.Company)
		wc.Industry = cloneStringPtr(p.WorkContext.Industry)
		wc.Skills = append([]string(nil), p.WorkContext.Skills...)
		wc.CurrentProjects = append([]string(nil), p.WorkContext.CurrentProjects...)
		c.WorkContext = &wc
	}

	c.KnowledgeDomains = make(map[string]float32, len(p.KnowledgeDomains))
	for domain, score := range p.KnowledgeDomains {
		c.KnowledgeDomains[domain] = score
	}

	c.ConversationHabits.QuestionTypes = make(map[string]uint32, len(p.ConversationHabits.QuestionTypes))
	for t, n := range p.ConversationHabits.QuestionTypes {
		c.ConversationHabits.QuestionTypes[t] = n
	}
	c.ConversationHabits.CommonTopics = append([]string(nil), p.ConversationHabits.CommonTopics...)
	c.ConversationHabits.TimePatterns = append([]uint32(nil), p.ConversationHabits.TimePatterns...)

	return c
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
