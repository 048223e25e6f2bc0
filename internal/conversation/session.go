package conversation

import (
	"time"

	"github.com/google/uuid"

	"talentscout/internal/questions"
	"talentscout/internal/storage"
)

// Session holds the full state of one candidate conversation: current
// stage, candidate record, message history, question queue and position.
// A session is owned by exactly one caller; reset replaces it wholesale
// with a fresh one.
type Session struct {
	id         string
	stage      Stage
	candidate  storage.CandidateRecord
	messages   []storage.Message
	queue      []questions.Record
	queueIndex int
	answers    []questions.Answer
	ended      bool
	startedAt  time.Time
}

// NewSession creates a fresh session at the greeting stage, with the
// greeting already recorded as the first bot message.
func NewSession() *Session {
	s := &Session{
		id:        uuid.New().String(),
		stage:     StageGreeting,
		startedAt: time.Now(),
	}
	s.appendMessage(storage.RoleBot, Prompt(StageGreeting))
	return s
}

func (s *Session) appendMessage(role, text string) storage.Message {
	msg := storage.Message{
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Stage returns the current conversation stage.
func (s *Session) Stage() Stage {
	return s.stage
}

// Ended reports whether the conversation has reached its terminal state.
func (s *Session) Ended() bool {
	return s.ended
}

// Candidate returns a copy of the candidate record collected so far.
func (s *Session) Candidate() storage.CandidateRecord {
	candidate := s.candidate
	candidate.TechStack = append([]string(nil), s.candidate.TechStack...)
	return candidate
}

// Messages returns a copy of the conversation history.
func (s *Session) Messages() []storage.Message {
	return append([]storage.Message(nil), s.messages...)
}

// Answers returns a copy of the answers recorded so far.
func (s *Session) Answers() []questions.Answer {
	return append([]questions.Answer(nil), s.answers...)
}

// CurrentQuestion returns the active question, if the session is in the
// question stage with questions remaining. The presentation layer uses
// it to render options for multiple-choice questions.
func (s *Session) CurrentQuestion() (questions.Record, bool) {
	if s.stage != StageQuestions || s.queueIndex >= len(s.queue) {
		return questions.Record{}, false
	}
	return s.queue[s.queueIndex], true
}

// QueueLength returns the number of questions in the seeded queue.
func (s *Session) QueueLength() int {
	return len(s.queue)
}

// Progress returns the session's position in the conversation as
// current step and total steps.
func (s *Session) Progress() (int, int) {
	return Progress(s.stage)
}
