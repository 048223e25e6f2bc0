package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExitCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"exit keyword", "exit", true},
		{"quit keyword", "quit", true},
		{"bye keyword", "bye", true},
		{"goodbye keyword", "goodbye", true},
		{"stop keyword", "stop", true},
		{"end keyword", "end", true},
		{"uppercase", "EXIT", true},
		{"surrounding whitespace", "  quit  ", true},
		{"embedded keyword is not an exit", "please exit now", false},
		{"regular answer", "Python", false},
		{"empty input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExitCommand(tt.input))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"minimal valid address", "a@b.co", true},
		{"typical address", "jane.doe+jobs@example.org", true},
		{"missing TLD", "a@b", false},
		{"single letter TLD", "a@b.c", false},
		{"missing local part", "@example.com", false},
		{"missing at sign", "example.com", false},
		{"spaces are rejected", "jane doe@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.input))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"ten digits with hyphens", "123-456-7890", true},
		{"international format", "+1 (555) 123-4567", true},
		{"too few digits", "12345", false},
		{"letters are rejected", "123-456-ABCD", false},
		{"ten digits but invalid char", "123.456.7890", false},
		{"empty input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhone(tt.input))
		})
	}
}

func TestIsValidFreeText(t *testing.T) {
	assert.True(t, IsValidFreeText("Jo", 2))
	assert.True(t, IsValidFreeText("  Jo  ", 2))
	assert.False(t, IsValidFreeText("J", 2))
	assert.False(t, IsValidFreeText("   ", 2))
}

func TestIsValidExperience(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"whole years", "3", true},
		{"fractional years", "5.5", true},
		{"zero years", "0", true},
		{"upper bound", "50", true},
		{"above upper bound", "51", false},
		{"negative", "-1", false},
		{"not a number", "three", false},
		{"empty input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidExperience(tt.input))
		})
	}
}

func TestParseTechStack(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empties dropped and whitespace trimmed", "Python, , React ,Go", []string{"Python", "React", "Go"}},
		{"single technology", "Go", []string{"Go"}},
		{"only separators", ", ,,", nil},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTechStack(tt.input))
		})
	}
}
