package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"talentscout/internal/api"
	"talentscout/internal/cli"
	"talentscout/internal/config"
	"talentscout/internal/conversation"
	"talentscout/internal/logger"
	"talentscout/internal/metrics"
	"talentscout/internal/questions"
	"talentscout/internal/storage"
)

func main() {
	fmt.Println("🚀 Starting TalentScout Hiring Assistant...")

	// .env is optional; environment variables may be set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.LoadAppConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	zapLog := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer zapLog.Sync()

	m := metrics.NewMetrics()

	supplier, err := buildSupplier(cfg, zapLog, m)
	if err != nil {
		log.Fatalf("Question supplier error: %v", err)
	}

	store, closeStore, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("Transcript store error: %v", err)
	}
	if closeStore != nil {
		defer closeStore()
	}

	zapLog.Info("services initialized",
		zap.String("strategy", cfg.Session.Strategy),
		zap.String("storage_backend", cfg.Storage.Backend))

	engine := conversation.NewEngine(supplier, store, zapLog, m)
	runner := cli.NewRunner(engine, zapLog)

	if err := runner.Run(context.Background()); err != nil {
		log.Fatalf("Session error: %v", err)
	}

	snapshot := m.GetSnapshot()
	zapLog.Info("shutting down",
		zap.Int64("sessions_started", snapshot.SessionsStarted),
		zap.Int64("sessions_completed", snapshot.SessionsCompleted),
		zap.Int64("questions_asked", snapshot.QuestionsAsked),
		zap.Int64("transcripts_saved", snapshot.TranscriptsSaved))
}

// buildSupplier selects the question supplier from configuration: the
// deterministic templated set or the OpenAI-backed generative one.
func buildSupplier(cfg *config.AppConfig, zapLog *zap.Logger, m *metrics.Metrics) (questions.Supplier, error) {
	switch cfg.Session.Strategy {
	case config.StrategyGenerative:
		client := api.NewOpenAIClient(cfg.OpenAI)
		return questions.NewGenerativeSupplier(client, zapLog, m), nil
	default:
		var bank *config.QuestionBank
		if cfg.Session.QuestionBankFile != "" {
			loaded, err := config.LoadQuestionBank(cfg.Session.QuestionBankFile)
			if err != nil {
				return nil, fmt.Errorf("loading question bank: %w", err)
			}
			bank = loaded
		}
		return questions.NewTemplatedSupplier(bank), nil
	}
}

// buildStore selects the transcript backend from configuration.
func buildStore(cfg *config.AppConfig) (storage.Store, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		store, err := storage.NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return storage.NewFileStore(cfg.Storage.ResultsDir), nil, nil
	}
}
