package questions

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"talentscout/internal/api"
	"talentscout/internal/metrics"
	"talentscout/internal/prompts"
)

// QuestionsPerTechnology is how many open-ended questions the generative
// supplier requests per declared technology.
const QuestionsPerTechnology = 3

// Completer is the narrow view of the OpenAI client the supplier needs.
type Completer interface {
	Complete(ctx context.Context, messages []api.Message) (string, error)
}

// GenerativeSupplier requests open-ended questions from the
// text-generation service in a single call. The response must decode as
// a JSON array of {question, technology} objects; any transport error or
// schema mismatch switches to the deterministic fallback instead of
// partially trusting the payload.
type GenerativeSupplier struct {
	client   Completer
	fallback Supplier
	log      *zap.Logger
	metrics  *metrics.Metrics
}

type generatedQuestion struct {
	Question   string `json:"question"`
	Technology string `json:"technology"`
}

func NewGenerativeSupplier(client Completer, log *zap.Logger, m *metrics.Metrics) *GenerativeSupplier {
	return &GenerativeSupplier{
		client:   client,
		fallback: NewFallbackSupplier(),
		log:      log,
		metrics:  m,
	}
}

func (s *GenerativeSupplier) Supply(ctx context.Context, techStack []string) []Record {
	if len(techStack) == 0 {
		return nil
	}

	total := QuestionsPerTechnology * len(techStack)
	prompt := prompts.GenerateQuestionsPrompt(techStack, total)

	response, err := s.client.Complete(ctx, []api.Message{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		s.metrics.IncrementGenerationCall(false)
		s.log.Warn("question generation failed, using fallback", zap.Error(err))
		return s.fallback.Supply(ctx, techStack)
	}

	records, err := parseGeneratedQuestions(response)
	if err != nil {
		s.metrics.IncrementGenerationCall(false)
		s.log.Warn("question generation returned malformed payload, using fallback", zap.Error(err))
		return s.fallback.Supply(ctx, techStack)
	}

	s.metrics.IncrementGenerationCall(true)
	return records
}

// parseGeneratedQuestions strictly decodes the model response. The top
// level must be a JSON array and every entry must carry a non-empty
// question and technology.
func parseGeneratedQuestions(response string) ([]Record, error) {
	var generated []generatedQuestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(response)), &generated); err != nil {
		return nil, err
	}
	if len(generated) == 0 {
		return nil, errEmptyGeneration
	}

	records := make([]Record, 0, len(generated))
	for _, g := range generated {
		if strings.TrimSpace(g.Question) == "" || strings.TrimSpace(g.Technology) == "" {
			return nil, errIncompleteGeneration
		}
		records = append(records, Record{
			Question:   strings.TrimSpace(g.Question),
			Technology: strings.TrimSpace(g.Technology),
		})
	}
	return records, nil
}
