package questions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentscout/internal/config"
)

func TestTemplatedSupplier_Supply(t *testing.T) {
	supplier := NewTemplatedSupplier(nil)

	records := supplier.Supply(context.Background(), []string{"Go", "Rust"})
	require.Len(t, records, 5)

	for _, record := range records {
		assert.Contains(t, record.Question, "Go")
		assert.Equal(t, "Go", record.Technology)
		assert.Len(t, record.Options, 4)
		assert.Contains(t, record.Options, record.Correct)
		assert.True(t, record.IsMultipleChoice())
	}
}

func TestTemplatedSupplier_CorrectLabelIsAlwaysB(t *testing.T) {
	// Every built-in template designates option B. Rebalancing the
	// labels would change scoring for already-saved transcripts.
	supplier := NewTemplatedSupplier(nil)

	for _, record := range supplier.Supply(context.Background(), []string{"Python"}) {
		assert.Equal(t, "B", record.Correct)
	}
}

func TestTemplatedSupplier_CustomBank(t *testing.T) {
	bank := &config.QuestionBank{
		Questions: []config.QuestionTemplate{
			{
				Template: "How is memory managed in {tech}?",
				Options: map[string]string{
					"A": "Manually", "B": "Garbage collection", "C": "Not at all", "D": "By the OS only",
				},
				Correct: "B",
			},
		},
	}
	supplier := NewTemplatedSupplier(bank)

	records := supplier.Supply(context.Background(), []string{"Go"})
	require.Len(t, records, 1)
	assert.Equal(t, "How is memory managed in Go?", records[0].Question)
}

func TestTemplatedSupplier_EmptyStackUsesPlaceholder(t *testing.T) {
	supplier := NewTemplatedSupplier(nil)

	records := supplier.Supply(context.Background(), nil)
	require.Len(t, records, 5)
	assert.Contains(t, records[0].Question, "Technology")
}
