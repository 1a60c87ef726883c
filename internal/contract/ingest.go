package contract

import "github.com/alexanderramin/streakmind/internal/domain"

// IngestKind tells how a message was interpreted.
type IngestKind string

const (
	KindLog          IngestKind = "log"
	KindActivity     IngestKind = "activity"
	KindCommand      IngestKind = "command"
	KindConversation IngestKind = "conversation"
)

// IngestRequest carries one inbound user message.
type IngestRequest struct {
	Message string `json:"content"`
}

// IngestResult is returned for every accepted message.
type IngestResult struct {
	Reply           string           `json:"reply"`
	Kind            IngestKind       `json:"kind"`
	LogEntry        *domain.LogEntry `json:"logEntry"`
	PointsAwarded   int              `json:"pointsAwarded"`
	StreakUpdated   bool             `json:"streakUpdated"`
	CurrentStreak   *int             `json:"currentStreak"`
	ActivityCreated string           `json:"newActivity,omitempty"`
	CommandAction   string           `json:"crudAction,omitempty"`
	Personality     string           `json:"personality,omitempty"`
	FallbackReply   bool             `json:"fallbackReply,omitempty"`
}
