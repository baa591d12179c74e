package assessment

// Option is one selectable answer with its score weight.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Question is a single assessment prompt with its ordered options.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Option returns the option carrying value, if any.
func (q Question) Option(value string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// MaxWeight returns the largest option weight, or 0 for a question with no options.
func (q Question) MaxWeight() int {
	max := 0
	for _, opt := range q.Options {
		if opt.Score > max {
			max = opt.Score
		}
	}
	return max
}

// Answers maps question IDs to the chosen option value.
type Answers map[string]string

// Clone returns an independent copy so snapshots never alias live state.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func frequencyOptions() []Option {
	return []Option{
		{Value: "not-at-all", Label: "Not at all", Score: 0},
		{Value: "several-days", Label: "Several days", Score: 1},
		{Value: "more-than-half", Label: "More than half the days", Score: 2},
		{Value: "nearly-every-day", Label: "Nearly every day", Score: 3},
	}
}

// DefaultQuestions returns the clinic's five question wellbeing screener.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:      "mood",
			Text:    "Over the past two weeks, how often have you been bothered by feeling down, depressed, or hopeless?",
			Options: frequencyOptions(),
		},
		{
			ID:      "interest",
			Text:    "Over the past two weeks, how often have you had little interest or pleasure in doing things?",
			Options: frequencyOptions(),
		},
		{
			ID:      "anxiety",
			Text:    "Over the past two weeks, how often have you been bothered by feeling nervous, anxious, or on edge?",
			Options: frequencyOptions(),
		},
		{
			ID:      "worry",
			Text:    "Over the past two weeks, how often have you been unable to stop or control worrying?",
			Options: frequencyOptions(),
		},
		{
			ID:   "sleep",
			Text: "How would you rate your sleep quality over the past two weeks?",
			Options: []Option{
				{Value: "excellent", Label: "Excellent", Score: 0},
				{Value: "good", Label: "Good", Score: 1},
				{Value: "fair", Label: "Fair", Score: 2},
				{Value: "poor", Label: "Poor", Score: 3},
			},
		},
	}
}
