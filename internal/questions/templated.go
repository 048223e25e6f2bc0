package questions

import (
	"context"
	"strings"

	"talentscout/internal/config"
)

// DefaultQuestionBank returns the built-in fixed question set: five
// multiple-choice templates parameterized by the candidate's primary
// technology. Every template currently designates option B as correct;
// a question bank file can supply curated labels instead.
func DefaultQuestionBank() *config.QuestionBank {
	return &config.QuestionBank{
		Questions: []config.QuestionTemplate{
			{
				Template: "What is the primary purpose of {tech} in software development?",
				Options: map[string]string{
					"A": "To increase system complexity",
					"B": "To improve application performance and scalability",
					"C": "To reduce code readability",
					"D": "To eliminate the need for testing",
				},
				Correct: "B",
			},
			{
				Template: "Which of the following is a best practice when working with {tech}?",
				Options: map[string]string{
					"A": "Ignore error handling",
					"B": "Follow documentation and community guidelines",
					"C": "Avoid version control",
					"D": "Hardcode all configurations",
				},
				Correct: "B",
			},
			{
				Template: "How does {tech} typically handle security concerns?",
				Options: map[string]string{
					"A": "By ignoring security completely",
					"B": "Through built-in security features and best practices",
					"C": "By exposing all data publicly",
					"D": "By disabling authentication",
				},
				Correct: "B",
			},
			{
				Template: "What is a common challenge when scaling applications with {tech}?",
				Options: map[string]string{
					"A": "It cannot be scaled",
					"B": "Managing resources and optimizing performance",
					"C": "It requires no configuration",
					"D": "It works the same at any scale",
				},
				Correct: "B",
			},
			{
				Template: "Which approach is recommended for debugging issues in {tech}?",
				Options: map[string]string{
					"A": "Add random print statements",
					"B": "Use proper logging and debugging tools",
					"C": "Restart the server repeatedly",
					"D": "Ignore errors in production",
				},
				Correct: "B",
			},
		},
	}
}

// TemplatedSupplier produces the fixed multiple-choice question set,
// substituting the first technology of the stack into every template.
type TemplatedSupplier struct {
	bank *config.QuestionBank
}

// NewTemplatedSupplier builds a templated supplier. A nil bank selects
// the built-in default question set.
func NewTemplatedSupplier(bank *config.QuestionBank) *TemplatedSupplier {
	if bank == nil {
		bank = DefaultQuestionBank()
	}
	return &TemplatedSupplier{bank: bank}
}

func (s *TemplatedSupplier) Supply(_ context.Context, techStack []string) []Record {
	primaryTech := "Technology"
	if len(techStack) > 0 {
		primaryTech = techStack[0]
	}

	records := make([]Record, 0, len(s.bank.Questions))
	for _, tmpl := range s.bank.Questions {
		options := make(map[string]string, len(tmpl.Options))
		for label, text := range tmpl.Options {
			options[label] = text
		}
		records = append(records, Record{
			Question:   strings.ReplaceAll(tmpl.Template, "{tech}", primaryTech),
			Technology: primaryTech,
			Options:    options,
			Correct:    tmpl.Correct,
		})
	}
	return records
}
