package conversation

// Stage is a named point in the linear conversation sequence. It
// controls which prompt and validator are active for the next utterance.
type Stage string

const (
	StageGreeting     Stage = "GREETING"
	StageCollectName  Stage = "COLLECT_NAME" // alias of GREETING, both capture the name
	StageCollectEmail Stage = "COLLECT_EMAIL"
	StageCollectPhone Stage = "COLLECT_PHONE"
	StageCollectExp   Stage = "COLLECT_EXPERIENCE"
	StageCollectPos   Stage = "COLLECT_POSITION"
	StageCollectLoc   Stage = "COLLECT_LOCATION"
	StageCollectTech  Stage = "COLLECT_TECH_STACK"
	StageQuestions    Stage = "GENERATE_QUESTIONS"
	StageEnd          Stage = "END"
)

// stageOrder drives the progress indicator shown by the presentation
// layer. COLLECT_NAME is folded into GREETING.
var stageOrder = []Stage{
	StageGreeting,
	StageCollectEmail,
	StageCollectPhone,
	StageCollectExp,
	StageCollectPos,
	StageCollectLoc,
	StageCollectTech,
	StageQuestions,
	StageEnd,
}

const greetingPrompt = `👋 Welcome to TalentScout - Your AI Hiring Assistant!

I'm here to help you through the initial screening process for technical positions.

What I'll do:
- Collect your basic information
- Ask about your technical skills
- Ask you a few technical questions

To exit anytime, type: exit, quit, or bye

Let's get started!

Please enter your Full Name:`

const techStackPrompt = `Please enter your Tech Stack (comma-separated list of technologies).

Examples:
- Python, Django, PostgreSQL, Docker
- React, Node.js, MongoDB, AWS
- Java, Spring Boot, MySQL, Kubernetes

Your Tech Stack:`

var stagePrompts = map[Stage]string{
	StageGreeting:     greetingPrompt,
	StageCollectName:  "Please enter your Full Name:",
	StageCollectEmail: "Please enter your Email Address:",
	StageCollectPhone: "Please enter your Phone Number (with country code if applicable):",
	StageCollectExp:   "How many Years of Experience do you have in the tech industry?",
	StageCollectPos:   "What is your Desired Position or job title you're applying for?",
	StageCollectLoc:   "What is your Current Location (City, Country)?",
	StageCollectTech:  techStackPrompt,
	StageEnd:          "Thank you for your time! Our recruitment team will review your profile and contact you shortly.",
}

const assistPrompt = "I'm here to assist with the hiring process. Could you please provide the requested details?"

// Prompt returns the bot utterance that opens the given stage.
func Prompt(stage Stage) string {
	if prompt, ok := stagePrompts[stage]; ok {
		return prompt
	}
	return assistPrompt
}

// Progress returns how far the given stage is through the conversation,
// as current step and total steps.
func Progress(stage Stage) (int, int) {
	if stage == StageCollectName {
		stage = StageGreeting
	}
	for i, s := range stageOrder {
		if s == stage {
			return i, len(stageOrder) - 1
		}
	}
	return len(stageOrder) - 2, len(stageOrder) - 1
}
