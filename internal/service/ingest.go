package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/streakmind/internal/companion"
	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/intent"
	"github.com/alexanderramin/streakmind/internal/scoring"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// interpretation is what the locked phase of Ingest decided.
type interpretation struct {
	result  *contract.IngestResult
	event   *companion.Event // nil when the reply is already final
	prompt  companion.PromptContext
	logged  *domain.LogEntry
	known   []string
	mutated bool
}

// Ingest runs the message pipeline in three phases. The tracker document is
// interpreted, mutated and saved under the lock; the reply is generated
// without it; the transcript and memory are then appended under the lock.
func (s *trackerService) Ingest(ctx context.Context, req contract.IngestRequest) (res *contract.IngestResult, err error) {
	fields := map[string]any{}
	done := track(ctx, s.observer, UseCaseIngest, fields)
	defer func() { done(err) }()

	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}
	received := s.now()

	in, err := s.interpret(ctx, text, received)
	if err != nil {
		return nil, err
	}
	res = in.result
	fields["kind"] = string(res.Kind)
	fields["points"] = res.PointsAwarded

	if in.event != nil {
		reply := s.replies.Reply(ctx, *in.event, in.prompt)
		res.Reply = reply.Text
		res.Personality = string(reply.Personality)
		res.FallbackReply = reply.Fallback
	}

	s.record(ctx, text, received, in)
	return res, nil
}

func (s *trackerService) interpret(ctx context.Context, text string, now time.Time) (*interpretation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.loadState(ctx)
	known := st.KnownActivityNames()
	in := &interpretation{
		result: &contract.IngestResult{Kind: contract.KindConversation},
		known:  known,
	}

	switch {
	case intent.IsGeneralQuery(text, known):
		in.event = &companion.Event{Kind: companion.EventConversation, Message: text, General: true}

	default:
		if name, ok := intent.DetectTrackRequest(text); ok {
			s.trackRequest(st, name, text, now, in)
		} else if cmd := intent.ParseCommand(text); cmd.Action != intent.ActionNone {
			s.applyCommand(st, cmd, now, in)
		} else if p, ok := intent.Parse(text, known, now); ok {
			s.applyLog(st, p, text, now, in)
		} else {
			in.event = &companion.Event{Kind: companion.EventParseMiss, Message: text}
		}
	}

	if in.mutated {
		if err := s.store.State.Save(ctx, st); err != nil {
			return nil, fmt.Errorf("saving tracker state: %w", err)
		}
	}

	if in.event != nil {
		mem := s.loadMemory(ctx)
		in.prompt = companion.PromptContext{
			ActiveHabits:  st.Streaks.Len(),
			HighestStreak: st.Streaks.Max(),
			Memory:        mem.ContextSummary(),
			Settings:      s.loadSettings(ctx),
		}
	}
	return in, nil
}

func (s *trackerService) trackRequest(st *domain.TrackerState, name, text string, now time.Time, in *interpretation) {
	in.result.Kind = contract.KindActivity
	if existing, ok := st.ResolveActivity(name); ok {
		in.result.Reply = companion.AlreadyTrackingReply(existing)
		return
	}
	err := st.AddActivity(domain.Activity{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
	})
	if err != nil {
		// Only reachable for names the detector should have rejected.
		in.result.Kind = contract.KindConversation
		in.event = &companion.Event{Kind: companion.EventParseMiss, Message: text}
		return
	}
	in.mutated = true
	in.result.ActivityCreated = domain.NormalizeActivityName(name)
	in.event = &companion.Event{
		Kind:     companion.EventActivityCreated,
		Message:  text,
		Activity: in.result.ActivityCreated,
	}
}

func (s *trackerService) applyCommand(st *domain.TrackerState, cmd intent.Command, now time.Time, in *interpretation) {
	in.result.Kind = contract.KindCommand
	in.result.CommandAction = string(cmd.Action)

	resolved, found := st.ResolveActivity(cmd.Activity)
	switch cmd.Action {
	case intent.ActionDelete:
		if !found {
			in.result.Reply = companion.DeleteFailedReply(cmd.Activity)
			return
		}
		if _, err := st.DeleteActivity(resolved); err != nil {
			in.result.Reply = companion.DeleteFailedReply(cmd.Activity)
			return
		}
		in.mutated = true
		in.result.Reply = companion.DeletedReply(resolved)

	case intent.ActionRename:
		if !found || st.RenameActivity(resolved, cmd.NewName) != nil {
			in.result.Reply = companion.RenameFailedReply(cmd.Activity)
			return
		}
		in.mutated = true
		in.result.Reply = companion.RenamedReply(resolved, domain.NormalizeActivityName(cmd.NewName))

	case intent.ActionSetPoints:
		if !found || cmd.Points == nil {
			in.result.Reply = companion.PointsFailedReply(cmd.Activity)
			return
		}
		a := ensureDefinition(st, resolved, now)
		if a == nil || a.SetCustomPoints(cmd.Points) != nil {
			in.result.Reply = companion.PointsFailedReply(cmd.Activity)
			return
		}
		in.mutated = true
		in.result.Reply = companion.PointsSetReply(resolved, *cmd.Points)
	}
}

func (s *trackerService) applyLog(st *domain.TrackerState, p intent.ParsedIntent, text string, now time.Time, in *interpretation) {
	if ensureDefinition(st, p.Activity, now) == nil {
		in.event = &companion.Event{Kind: companion.EventParseMiss, Message: text}
		return
	}

	points := scoring.Points(p.Activity, p.Amount, p.Unit, st)
	current := st.Streaks.Get(p.Activity)
	next, updated := s.policy.Advance(current, st.Logs, p.Activity, p.Date)
	st.Streaks.Set(p.Activity, next)

	entry := domain.LogEntry{
		ID:        uuid.New().String(),
		Activity:  p.Activity,
		Amount:    p.Amount,
		Unit:      p.Unit,
		Date:      p.Date,
		Message:   text,
		Timestamp: now,
		Points:    points,
	}
	st.AppendLog(entry)
	in.mutated = true
	in.logged = &entry

	streak := st.Streaks.Get(p.Activity)
	in.result.Kind = contract.KindLog
	in.result.LogEntry = &entry
	in.result.PointsAwarded = points
	in.result.StreakUpdated = updated
	in.result.CurrentStreak = &streak
	in.event = &companion.Event{
		Kind:          companion.EventLog,
		Message:       text,
		Entry:         &entry,
		Points:        points,
		StreakUpdated: updated,
		Streak:        streak,
	}
}

// ensureDefinition returns the definition for name, creating one for a
// streak-only or never-seen activity.
func ensureDefinition(st *domain.TrackerState, name string, now time.Time) *domain.Activity {
	if a, ok := st.Activity(name); ok {
		return a
	}
	err := st.AddActivity(domain.Activity{ID: uuid.New().String(), Name: name, CreatedAt: now})
	if err != nil {
		return nil
	}
	a, _ := st.Activity(domain.NormalizeActivityName(name))
	return a
}

// record appends both transcript messages and folds the exchange into the
// user memory. Both documents are best-effort: the tracker state is already
// durable, so failures are logged rather than returned.
func (s *trackerService) record(ctx context.Context, text string, received time.Time, in *interpretation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replied := s.now()
	if !replied.After(received) {
		replied = received.Add(time.Millisecond)
	}

	msgs := s.loadTranscript(ctx)
	msgs = append(msgs,
		domain.ChatMessage{ID: uuid.New().String(), Role: domain.RoleUser, Message: text, Timestamp: received},
		domain.ChatMessage{ID: uuid.New().String(), Role: domain.RoleAssistant, Message: in.result.Reply, Timestamp: replied},
	)
	if err := s.store.Transcript.Save(ctx, msgs); err != nil {
		s.log.Warn("saving transcript failed", zap.Error(err))
	}

	mem := s.loadMemory(ctx)
	companion.ObserveMessage(mem, domain.RoleUser, text, in.known, received)
	if in.logged != nil {
		companion.ObserveLog(mem, *in.logged, *in.result.CurrentStreak, in.result.StreakUpdated, received)
	}
	companion.ObserveMessage(mem, domain.RoleAssistant, in.result.Reply, in.known, replied)
	if err := s.store.Memory.Save(ctx, mem); err != nil {
		s.log.Warn("saving memory failed", zap.Error(err))
	}
}
