package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Option labels every multiple-choice question must carry.
var optionLabels = []string{"A", "B", "C", "D"}

// LoadQuestionBank loads and validates a YAML question bank file.
func LoadQuestionBank(filename string) (*QuestionBank, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	var bank QuestionBank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := validateQuestionBank(&bank); err != nil {
		return nil, fmt.Errorf("validating question bank: %w", err)
	}

	return &bank, nil
}

func validateQuestionBank(bank *QuestionBank) error {
	if len(bank.Questions) == 0 {
		return fmt.Errorf("question bank must contain at least one question")
	}

	for i, q := range bank.Questions {
		if strings.TrimSpace(q.Template) == "" {
			return fmt.Errorf("question %d: template must not be empty", i+1)
		}
		if !strings.Contains(q.Template, "{tech}") {
			return fmt.Errorf("question %d: template must contain the {tech} placeholder", i+1)
		}
		if len(q.Options) != len(optionLabels) {
			return fmt.Errorf("question %d: expected %d options, got %d", i+1, len(optionLabels), len(q.Options))
		}
		for _, label := range optionLabels {
			if strings.TrimSpace(q.Options[label]) == "" {
				return fmt.Errorf("question %d: option %s is missing or empty", i+1, label)
			}
		}
		if _, ok := q.Options[q.Correct]; !ok {
			return fmt.Errorf("question %d: correct label %q is not one of the options", i+1, q.Correct)
		}
	}

	return nil
}
