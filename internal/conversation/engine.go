package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"talentscout/internal/metrics"
	"talentscout/internal/questions"
	"talentscout/internal/storage"
	"talentscout/internal/validate"
)

// Engine drives the conversation state machine. It consumes one user
// utterance at a time and produces the bot messages for that turn. The
// engine itself is stateless across turns; all per-candidate state lives
// in the Session passed by the caller.
type Engine struct {
	supplier questions.Supplier
	store    storage.Store
	log      *zap.Logger
	metrics  *metrics.Metrics
}

func NewEngine(supplier questions.Supplier, store storage.Store, log *zap.Logger, m *metrics.Metrics) *Engine {
	return &Engine{
		supplier: supplier,
		store:    store,
		log:      log,
		metrics:  m,
	}
}

// NewSession starts a fresh session.
func (e *Engine) NewSession() *Session {
	e.metrics.IncrementSessionsStarted()
	return NewSession()
}

// Reset discards the given session and returns a fresh one. The old
// session is not mutated; callers simply stop using it.
func (e *Engine) Reset(_ *Session) *Session {
	return e.NewSession()
}

// Submit processes one user utterance against the session and returns
// the bot messages emitted this turn. Exactly one field write or queue
// advance happens per successful turn; on validation failure the session
// is left untouched apart from the message log.
func (e *Engine) Submit(ctx context.Context, s *Session, text string) []storage.Message {
	text = strings.TrimSpace(text)
	s.appendMessage(storage.RoleUser, text)

	var emitted []storage.Message
	reply := func(text string) {
		emitted = append(emitted, s.appendMessage(storage.RoleBot, text))
	}

	if s.ended {
		reply(assistPrompt)
		return emitted
	}

	// Exit keywords pre-empt all stage-specific handling.
	if validate.IsExitCommand(text) {
		name := s.candidate.FullName
		if name == "" {
			name = "there"
		}
		reply(fmt.Sprintf("Thank you for your time, %s. Our recruitment team will contact you shortly if needed. Goodbye! 👋", name))
		s.stage = StageEnd
		s.ended = true
		return emitted
	}

	switch s.stage {
	case StageGreeting, StageCollectName:
		if !validate.IsValidFreeText(text, validate.MinFreeTextLen) {
			reply("Please enter a valid name (at least 2 characters).")
			return emitted
		}
		s.candidate.FullName = text
		s.stage = StageCollectEmail
		reply(fmt.Sprintf("Nice to meet you, %s! %s", text, Prompt(StageCollectEmail)))

	case StageCollectEmail:
		if !validate.IsValidEmail(text) {
			reply("Please enter a valid email address (e.g., name@example.com).")
			return emitted
		}
		s.candidate.Email = text
		s.stage = StageCollectPhone
		reply(Prompt(StageCollectPhone))

	case StageCollectPhone:
		if !validate.IsValidPhone(text) {
			reply("Please enter a valid phone number with at least 10 digits.")
			return emitted
		}
		s.candidate.Phone = text
		s.stage = StageCollectExp
		reply(Prompt(StageCollectExp))

	case StageCollectExp:
		if !validate.IsValidExperience(text) {
			reply("Please enter a valid number of years (0-50).")
			return emitted
		}
		s.candidate.YearsExperience = text
		s.stage = StageCollectPos
		reply(Prompt(StageCollectPos))

	case StageCollectPos:
		if !validate.IsValidFreeText(text, validate.MinFreeTextLen) {
			reply("Please enter a valid position title.")
			return emitted
		}
		s.candidate.DesiredPosition = text
		s.stage = StageCollectLoc
		reply(Prompt(StageCollectLoc))

	case StageCollectLoc:
		if !validate.IsValidFreeText(text, validate.MinFreeTextLen) {
			reply("Please enter a valid location.")
			return emitted
		}
		s.candidate.CurrentLocation = text
		s.stage = StageCollectTech
		reply(Prompt(StageCollectTech))

	case StageCollectTech:
		stack := validate.ParseTechStack(text)
		if len(stack) == 0 {
			reply("Please enter at least one technology.")
			return emitted
		}
		s.candidate.TechStack = stack

		// Seeding the queue blocks this turn until the supplier
		// returns; the generative supplier falls back internally
		// rather than failing.
		s.queue = e.supplier.Supply(ctx, stack)
		s.queueIndex = 0
		s.stage = StageQuestions

		reply(fmt.Sprintf("Great! I've recorded your tech stack: %s", strings.Join(stack, ", ")))
		e.emitQuestion(s, reply)

	case StageQuestions:
		e.handleAnswer(s, text, reply)

	case StageEnd:
		reply(assistPrompt)

	default:
		// Defensive default, never reached via normal transitions.
		e.log.Warn("unrecognized conversation stage", zap.String("stage", string(s.stage)))
		reply(assistPrompt)
	}

	return emitted
}

// handleAnswer treats the utterance as an answer to the current
// question. Multiple-choice questions accept only the labels A-D;
// open-ended questions accept any text, with the literal "done" ending
// the quiz early without recording an answer.
func (e *Engine) handleAnswer(s *Session, text string, reply func(string)) {
	question := s.queue[s.queueIndex]

	if question.IsMultipleChoice() {
		answer := strings.ToUpper(text)
		if !isOptionLabel(answer) {
			reply("Please select a valid option: A, B, C, or D.")
			return
		}
		s.recordAnswer(question, answer)
		e.metrics.IncrementAnswersRecorded()
	} else {
		if strings.EqualFold(text, "done") {
			e.completeSession(s, reply)
			return
		}
		s.recordAnswer(question, text)
		e.metrics.IncrementAnswersRecorded()
	}

	s.queueIndex++
	if s.queueIndex >= len(s.queue) {
		e.completeSession(s, reply)
		return
	}
	e.emitQuestion(s, reply)
}

func (s *Session) recordAnswer(question questions.Record, answer string) {
	s.answers = append(s.answers, questions.Answer{
		Question:   question.Question,
		Technology: question.Technology,
		Answer:     answer,
	})
}

func (e *Engine) emitQuestion(s *Session, reply func(string)) {
	question := s.queue[s.queueIndex]
	reply(fmt.Sprintf("Question %d of %d:\n\n%s", s.queueIndex+1, len(s.queue), question.Question))
	e.metrics.IncrementQuestionsAsked()
}

// completeSession transitions to END, emits the closing message and
// persists the transcript. A persistence failure is reported as a
// non-fatal notice: the conversation has already completed.
func (e *Engine) completeSession(s *Session, reply func(string)) {
	name := s.candidate.FullName
	if name == "" {
		name = "there"
	}
	email := s.candidate.Email
	if email == "" {
		email = "your email"
	}

	reply(fmt.Sprintf("🎉 Thank you for your time, %s!\n\nThanks for answering the technical questions. We will let you know the result through your mail at %s.\n\n🍀 Good luck with your application!",
		name, email))

	s.stage = StageEnd
	s.ended = true
	e.metrics.IncrementSessionsCompleted()

	transcript := &storage.Transcript{
		SessionID:   s.id,
		Candidate:   s.Candidate(),
		Messages:    s.Messages(),
		Questions:   append([]questions.Record(nil), s.queue...),
		Answers:     s.Answers(),
		CompletedAt: time.Now(),
	}

	key, err := e.store.Save(transcript)
	if err != nil {
		e.log.Error("failed to save transcript",
			zap.String("session_id", s.id),
			zap.Error(err))
		reply("Note: we could not save your transcript right now, but your screening is complete.")
		return
	}

	e.metrics.IncrementTranscriptsSaved()
	e.log.Info("transcript saved",
		zap.String("session_id", s.id),
		zap.String("key", key))
}

func isOptionLabel(text string) bool {
	for _, label := range questions.OptionLabels {
		if text == label {
			return true
		}
	}
	return false
}
