package questions

import (
	"context"
	"fmt"
)

// Three open-ended templates applied per technology, in this order.
var fallbackTemplates = []string{
	"What is the primary purpose of %s and what problems does it solve?",
	"What best practices do you follow when working with %s?",
	"How do you address security concerns when building applications with %s?",
}

// FallbackSupplier deterministically produces three open-ended questions
// per technology, in strict tech-stack order. It backs the generative
// supplier so that a failed or malformed generation never leaves the
// candidate without questions.
type FallbackSupplier struct{}

func NewFallbackSupplier() *FallbackSupplier {
	return &FallbackSupplier{}
}

func (s *FallbackSupplier) Supply(_ context.Context, techStack []string) []Record {
	records := make([]Record, 0, len(techStack)*len(fallbackTemplates))
	for _, tech := range techStack {
		for _, tmpl := range fallbackTemplates {
			records = append(records, Record{
				Question:   fmt.Sprintf(tmpl, tech),
				Technology: tech,
			})
		}
	}
	return records
}
