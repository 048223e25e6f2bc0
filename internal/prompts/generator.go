package prompts

import (
	"fmt"
	"strings"
)

// GenerateQuestionsPrompt builds the instruction prompt asking the model
// for open-ended technical screening questions, three per technology,
// returned as a raw JSON array.
func GenerateQuestionsPrompt(techStack []string, totalQuestions int) string {
	var prompt strings.Builder

	prompt.WriteString("You are a technical interviewer preparing an initial screening for a job candidate.\n\n")

	prompt.WriteString("TASK:\n")
	prompt.WriteString(fmt.Sprintf("Generate exactly %d open-ended technical questions, %d for each of the candidate's technologies.\n\n",
		totalQuestions, totalQuestions/len(techStack)))

	prompt.WriteString("CANDIDATE TECH STACK:\n")
	for _, tech := range techStack {
		prompt.WriteString(fmt.Sprintf("- %s\n", tech))
	}
	prompt.WriteString("\n")

	prompt.WriteString("REQUIREMENTS:\n")
	prompt.WriteString("- Diversify across architecture, performance, security, debugging and advanced concepts\n")
	prompt.WriteString("- Each question must be specific to one technology from the list above\n")
	prompt.WriteString("- Questions should be answerable in a few sentences, suitable for screening\n")
	prompt.WriteString("- Do not repeat the same angle for the same technology\n\n")

	prompt.WriteString("RESPONSE FORMAT:\n")
	prompt.WriteString("Return ONLY a valid JSON array, no markdown and no commentary:\n")
	prompt.WriteString(`[{"question": "...", "technology": "..."}]`)

	return prompt.String()
}
