package storage

import (
	"time"

	"talentscout/internal/questions"
)

// Message roles in the conversation history.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// CandidateRecord holds the screening answers collected one field at a
// time as the conversation advances. Each field is written exactly once,
// in its dedicated stage.
type CandidateRecord struct {
	FullName        string   `json:"full_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	YearsExperience string   `json:"years_experience"`
	DesiredPosition string   `json:"desired_position"`
	CurrentLocation string   `json:"current_location"`
	TechStack       []string `json:"tech_stack"`
}

// Message is one utterance in the conversation history. The history is
// append-only; messages are never mutated or removed.
type Message struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Transcript is the durable record of one completed session.
type Transcript struct {
	SessionID   string             `json:"session_id"`
	Candidate   CandidateRecord    `json:"candidate_info"`
	Messages    []Message          `json:"conversation_history"`
	Questions   []questions.Record `json:"generated_questions"`
	Answers     []questions.Answer `json:"answers"`
	CompletedAt time.Time          `json:"timestamp"`
}

// Store persists completed transcripts. Save returns the key the
// transcript was stored under.
type Store interface {
	Save(transcript *Transcript) (string, error)
}
