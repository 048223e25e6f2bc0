package questions

// OptionLabels lists the multiple-choice labels in display order.
var OptionLabels = []string{"A", "B", "C", "D"}

// Record is one technical question aimed at a single technology from the
// candidate's declared stack. Multiple-choice records carry four labeled
// options and the label of the designated correct answer; open-ended
// records carry neither.
type Record struct {
	Question   string            `json:"question"`
	Technology string            `json:"technology"`
	Options    map[string]string `json:"options,omitempty"`
	Correct    string            `json:"correct,omitempty"`
}

// IsMultipleChoice reports whether the record restricts answers to the
// labeled options.
func (r Record) IsMultipleChoice() bool {
	return len(r.Options) > 0
}

// Answer is one recorded candidate answer, paired with the question it
// responds to.
type Answer struct {
	Question   string `json:"question"`
	Technology string `json:"technology"`
	Answer     string `json:"answer"`
}
