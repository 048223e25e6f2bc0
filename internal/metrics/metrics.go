package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu                        sync.RWMutex
	SessionsStarted           int64
	SessionsCompleted         int64
	QuestionsAsked            int64
	AnswersRecorded           int64
	GenerationCallsTotal      int64
	GenerationCallsSuccessful int64
	TranscriptsSaved          int64
	LastUpdateTime            time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementSessionsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsStarted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementSessionsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsCompleted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementQuestionsAsked() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuestionsAsked++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAnswersRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnswersRecorded++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementGenerationCall(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerationCallsTotal++
	if success {
		m.GenerationCallsSuccessful++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementTranscriptsSaved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranscriptsSaved++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Metrics{
		SessionsStarted:           m.SessionsStarted,
		SessionsCompleted:         m.SessionsCompleted,
		QuestionsAsked:            m.QuestionsAsked,
		AnswersRecorded:           m.AnswersRecorded,
		GenerationCallsTotal:      m.GenerationCallsTotal,
		GenerationCallsSuccessful: m.GenerationCallsSuccessful,
		TranscriptsSaved:          m.TranscriptsSaved,
		LastUpdateTime:            m.LastUpdateTime,
	}
}
