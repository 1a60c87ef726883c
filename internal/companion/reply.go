package companion

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/llm"
	"go.uber.org/zap"
)

// DefaultReplyTimeout bounds one reply generation end to end.
const DefaultReplyTimeout = 10 * time.Second

// EventKind tells the reply service what the pipeline just did.
type EventKind string

const (
	EventLog             EventKind = "log"
	EventActivityCreated EventKind = "activity_created"
	EventConversation    EventKind = "conversation"
	EventParseMiss       EventKind = "parse_miss"
)

// Event is the structured input a reply is generated for.
type Event struct {
	Kind          EventKind
	Message       string
	General       bool
	Entry         *domain.LogEntry
	Points        int
	StreakUpdated bool
	Streak        int
	Activity      string
}

// Reply is a generated or templated answer.
type Reply struct {
	Text        string
	Personality domain.Personality
	Fallback    bool
}

// ReplyService turns pipeline events into reply text. It never fails: every
// generation error degrades to a template.
type ReplyService interface {
	Reply(ctx context.Context, ev Event, pc PromptContext) Reply
}

type replyService struct {
	client  llm.LLMClient
	timeout time.Duration
	log     *zap.Logger
}

// NewReplyService creates a ReplyService. A nil client always answers with
// templates. A non-positive timeout uses DefaultReplyTimeout.
func NewReplyService(client llm.LLMClient, timeout time.Duration, log *zap.Logger) ReplyService {
	if timeout <= 0 {
		timeout = DefaultReplyTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &replyService{client: client, timeout: timeout, log: log.Named("companion")}
}

func (s *replyService) Reply(ctx context.Context, ev Event, pc PromptContext) Reply {
	personality := domain.PersonalityDefault
	if !ev.General {
		personality = EffectivePersonality(DetectPersonality(ev.Message), pc.Settings)
	}

	if s.client == nil {
		return Reply{Text: FallbackReply(ev), Personality: personality, Fallback: true}
	}

	task := llm.TaskReply
	if ev.Kind == EventConversation || ev.Kind == EventParseMiss {
		task = llm.TaskChat
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: SystemPrompt(personality, ev.General, pc),
		UserPrompt:   UserPrompt(ev),
	})
	switch {
	case errors.Is(err, llm.ErrEmptyOutput):
		return Reply{Text: EmptyReply(ev), Personality: personality, Fallback: true}
	case err != nil:
		s.log.Warn("reply generation failed, using template",
			zap.String("event", string(ev.Kind)),
			zap.String("error_code", llm.ErrorCode(err)),
			zap.Error(err),
		)
		return Reply{Text: FallbackReply(ev), Personality: personality, Fallback: true}
	}
	return Reply{Text: resp.Text, Personality: personality}
}
