package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"talentscout/internal/conversation"
	"talentscout/internal/questions"
	"talentscout/internal/storage"
)

// Runner is the terminal presentation layer: it renders bot messages,
// collects one utterance per turn and hands it to the conversation
// engine. It never inspects engine internals beyond the read-only
// session views.
type Runner struct {
	engine *conversation.Engine
	in     io.Reader
	out    io.Writer
	log    *zap.Logger
}

func NewRunner(engine *conversation.Engine, log *zap.Logger) *Runner {
	return &Runner{
		engine: engine,
		in:     os.Stdin,
		out:    os.Stdout,
		log:    log,
	}
}

// Run drives one candidate session to completion.
func (r *Runner) Run(ctx context.Context) error {
	session := r.engine.NewSession()
	r.renderHistory(session.Messages())

	scanner := bufio.NewScanner(r.in)
	for !session.Ended() {
		fmt.Fprint(r.out, "\n👤 You: ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			fmt.Fprintln(r.out, "Please enter a response.")
			continue
		}

		if strings.HasPrefix(text, "/") {
			session = r.handleCommand(text, session)
			continue
		}

		emitted := r.engine.Submit(ctx, session, text)
		r.renderHistory(emitted)
		r.renderOptions(session)
	}

	return scanner.Err()
}

func (r *Runner) handleCommand(command string, session *conversation.Session) *conversation.Session {
	switch command {
	case "/help":
		r.printHelp()
	case "/status":
		r.printStatus(session)
	case "/restart":
		session = r.engine.Reset(session)
		r.log.Info("session reset by user", zap.String("session_id", session.ID()))
		fmt.Fprintln(r.out, "🔄 Conversation reset. Starting over with a new candidate.")
		r.renderHistory(session.Messages())
	default:
		fmt.Fprintln(r.out, "Unknown command. Use /help for the list of commands.")
	}
	return session
}

func (r *Runner) printHelp() {
	fmt.Fprintln(r.out, `Commands:
/help    - Show this message
/status  - Show conversation progress and candidate summary
/restart - Discard the session and start over

Type exit, quit or bye at any time to end the conversation.
Tech stack should be entered as a comma-separated list.`)
}

func (r *Runner) printStatus(session *conversation.Session) {
	current, total := session.Progress()
	fmt.Fprintf(r.out, "📊 Stage: %s (%d/%d)\n", session.Stage(), current, total)

	candidate := session.Candidate()
	fmt.Fprintln(r.out, "📋 Candidate Summary:")
	fmt.Fprintf(r.out, "  Name:       %s\n", orNotProvided(candidate.FullName))
	fmt.Fprintf(r.out, "  Email:      %s\n", orNotProvided(candidate.Email))
	fmt.Fprintf(r.out, "  Phone:      %s\n", orNotProvided(candidate.Phone))
	fmt.Fprintf(r.out, "  Experience: %s\n", orNotProvided(candidate.YearsExperience))
	fmt.Fprintf(r.out, "  Position:   %s\n", orNotProvided(candidate.DesiredPosition))
	fmt.Fprintf(r.out, "  Location:   %s\n", orNotProvided(candidate.CurrentLocation))
	fmt.Fprintf(r.out, "  Tech Stack: %s\n", orNotProvided(strings.Join(candidate.TechStack, ", ")))
}

func (r *Runner) renderHistory(messages []storage.Message) {
	for _, msg := range messages {
		if msg.Role == storage.RoleBot {
			fmt.Fprintf(r.out, "\n🤖 TalentScout: %s\n", msg.Text)
		}
	}
}

// renderOptions prints the labeled options when the active question is
// multiple-choice.
func (r *Runner) renderOptions(session *conversation.Session) {
	question, ok := session.CurrentQuestion()
	if !ok || !question.IsMultipleChoice() {
		return
	}
	fmt.Fprintln(r.out, "\nOptions:")
	for _, label := range questions.OptionLabels {
		fmt.Fprintf(r.out, "  %s) %s\n", label, question.Options[label])
	}
}

func orNotProvided(value string) string {
	if value == "" {
		return "Not provided"
	}
	return value
}
