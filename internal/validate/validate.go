package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// Exit keywords recognized from any conversation stage.
var exitKeywords = map[string]bool{
	"exit":    true,
	"quit":    true,
	"bye":     true,
	"goodbye": true,
	"stop":    true,
	"end":     true,
}

var (
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
)

// MinFreeTextLen is the minimum trimmed length for name, position and location.
const MinFreeTextLen = 2

// IsExitCommand reports whether the input is one of the exit keywords,
// case-insensitive and with surrounding whitespace ignored.
func IsExitCommand(text string) bool {
	return exitKeywords[strings.ToLower(strings.TrimSpace(text))]
}

// IsValidEmail reports whether the input looks like local@domain.tld
// with a TLD of at least two letters.
func IsValidEmail(text string) bool {
	return emailRegex.MatchString(text)
}

// IsValidPhone accepts digits, spaces, hyphens, plus signs and parentheses,
// and requires at least 10 digit characters overall.
func IsValidPhone(text string) bool {
	if !phoneRegex.MatchString(text) {
		return false
	}
	digits := 0
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10
}

// IsValidFreeText reports whether the trimmed input has at least minLen characters.
func IsValidFreeText(text string, minLen int) bool {
	return len(strings.TrimSpace(text)) >= minLen
}

// IsValidExperience reports whether the input parses as a number of years
// between 0 and 50 inclusive.
func IsValidExperience(text string) bool {
	years, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return false
	}
	return years >= 0 && years <= 50
}

// ParseTechStack splits a comma-separated technology list, trimming each
// entry and dropping empty ones. The entry order is preserved.
func ParseTechStack(text string) []string {
	var stack []string
	for _, part := range strings.Split(text, ",") {
		tech := strings.TrimSpace(part)
		if tech != "" {
			stack = append(stack, tech)
		}
	}
	return stack
}
