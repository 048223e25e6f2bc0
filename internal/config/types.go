package config

// QuestionBank holds the fixed multiple-choice question templates used
// by the templated supplier. Each template is parameterized by a
// technology name substituted for the {tech} placeholder.
type QuestionBank struct {
	Questions []QuestionTemplate `yaml:"questions"`
}

// QuestionTemplate is one fixed question with its four labeled options
// and the label of the designated correct answer.
type QuestionTemplate struct {
	Template string            `yaml:"template"`
	Options  map[string]string `yaml:"options"`
	Correct  string            `yaml:"correct"`
}
