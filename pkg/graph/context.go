package graph

import "time"

// Sentiment is the mood read from a user message. Sentiment analysis is not
// implemented yet; messages are recorded as neutral.
type Sentiment string

const (
	SentimentPositive   Sentiment = "positive"
	SentimentNegative   Sentiment = "negative"
	SentimentNeutral    Sentiment = "neutral"
	SentimentExcited    Sentiment = "excited"
	SentimentFrustrated Sentiment = "frustrated"
	SentimentCurious    Sentiment = "curious"
)

// TaskStatus is the lifecycle state of an ongoing task in a thread.
type TaskStatus string

const (
	TaskActive    TaskStatus = "active"
	TaskPaused    TaskStatus = "paused"
	TaskCompleted TaskStatus = "completed"
	TaskCancelled TaskStatus = "cancelled"
)

// Task is something the user is working through within a thread.
type Task struct {
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// EntityType categorizes a mentioned entity.
type EntityType string

const (
	EntityPerson     EntityType = "person"
	EntityCompany    EntityType = "company"
	EntityTechnology EntityType = "technology"
	EntityLocation   EntityType = "location"
	EntityProject    EntityType = "project"
	EntityDate       EntityType = "date"
	EntityOther      EntityType = "other"
)

// Entity is a named thing mentioned in conversation.
type Entity struct {
	Name       string     `json:"name"`
	EntityType EntityType `json:"entity_type"`
	Context    string     `json:"context"`
}

// ConversationContext tracks state for one caller-supplied thread id.
// Messages without a thread id are unthreaded and carry no context.
type ConversationContext struct {
	ThreadID             string    `json:"thread_id"`
	Topic                string    `json:"topic"`
	RelatedMemories      []string  `json:"related_memories"`
	UserSentiment        Sentiment `json:"user_sentiment"`
	OngoingTasks         []Task    `json:"ongoing_tasks"`
	MentionedEntities    []Entity  `json:"mentioned_entities"`
	LastMessageTimestamp time.Time `json:"last_message_timestamp"`
}

func (c ConversationContext) clone() ConversationContext {
	cp := c
	cp.RelatedMemories = append([]string(nil), c.RelatedMemories...)
	cp.OngoingTasks = append([]Task(nil), c.OngoingTasks...)
	cp.MentionedEntities = append([]Entity(nil), c.MentionedEntities...)
	return cp
}

// ResponseLength is the answer length a user tends to prefer.
type ResponseLength string

const (
	ResponseShort    ResponseLength = "short"
	ResponseMedium   ResponseLength = "medium"
	ResponseLong     ResponseLength = "long"
	ResponseVariable ResponseLength = "variable"
)

// LearningHistory tracks how much and how fast the assistant is learning
// about the user. Counters only ever go up.
type LearningHistory struct {
	InteractionCount        uint32            `json:"interaction_count"`
	TopicsDiscussed         map[string]uint32 `json:"topics_discussed"`
	PreferredResponseLength ResponseLength    `json:"preferred_response_length"`
	QuestionAskingFrequency float32           `json:"question_asking_frequency"`
	LearningSpeed           float32           `json:"learning_speed"`
	LastMajorUpdate         time.Time         `json:"last_major_update"`
}

func (h LearningHistory) clone() LearningHistory {
	c := h
	c.TopicsDiscussed = make(map[string]uint32, len(h.TopicsDiscussed))
	for topic, n := range h.TopicsDiscussed {
		c.TopicsDiscussed[topic] = n
	}
	return c
}
