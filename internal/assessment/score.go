package assessment

import (
	"fmt"
	"strings"
)

// Disclaimer accompanies every result.
const Disclaimer = "This assessment is for informational purposes only and is not a substitute for professional diagnosis."

// Tier is an ordered severity bucket.
type Tier int

const (
	TierMinimal Tier = iota
	TierMild
	TierModerate
	TierSevere
)

var tierNames = [...]string{"Minimal", "Mild", "Moderate", "Severe"}

func (t Tier) String() string {
	if t < TierMinimal || t > TierSevere {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// Rank is the tier's position in severity order, starting at 0.
func (t Tier) Rank() int { return int(t) }

// MarshalText renders the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	if t < TierMinimal || t > TierSevere {
		return nil, fmt.Errorf("assessment: invalid tier %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText parses a tier name, case-insensitively.
func (t *Tier) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	for i, candidate := range tierNames {
		if strings.EqualFold(candidate, name) {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("assessment: unknown tier %q", name)
}

// Interpretation is the static text and colouring attached to a tier.
type Interpretation struct {
	Tier            Tier   `json:"tier"`
	UpperBound      int    `json:"-"` // inclusive; -1 means unbounded
	Color           string `json:"color"`
	BackgroundColor string `json:"background_color"`
	Description     string `json:"description"`
	Recommendation  string `json:"recommendation"`
}

// interpretations must stay ordered by UpperBound so bucketing is monotonic.
var interpretations = [...]Interpretation{
	{
		Tier:            TierMinimal,
		UpperBound:      4,
		Color:           "green",
		BackgroundColor: "green-50",
		Description:     "Your responses suggest minimal symptoms. This is a positive sign for your mental well-being.",
		Recommendation:  "Continue with healthy lifestyle practices and consider our wellness resources for maintaining good mental health.",
	},
	{
		Tier:            TierMild,
		UpperBound:      9,
		Color:           "yellow",
		BackgroundColor: "yellow-50",
		Description:     "Your responses suggest mild symptoms that may be impacting your daily life.",
		Recommendation:  "Consider speaking with one of our therapists for support and coping strategies.",
	},
	{
		Tier:            TierModerate,
		UpperBound:      14,
		Color:           "orange",
		BackgroundColor: "orange-50",
		Description:     "Your responses suggest moderate symptoms that are likely affecting your daily functioning.",
		Recommendation:  "We strongly recommend scheduling a consultation with one of our mental health professionals.",
	},
	{
		Tier:            TierSevere,
		UpperBound:      -1,
		Color:           "red",
		BackgroundColor: "red-50",
		Description:     "Your responses suggest significant symptoms that may be severely impacting your life.",
		Recommendation:  "We recommend immediate consultation with a mental health professional. Please consider contacting our crisis support if needed.",
	},
}

// Interpret buckets a total score into its tier.
func Interpret(score int) Interpretation {
	for _, in := range interpretations {
		if in.UpperBound < 0 || score <= in.UpperBound {
			return in
		}
	}
	return interpretations[len(interpretations)-1]
}

// Result is the outcome of a completed assessment.
type Result struct {
	Score           int    `json:"score"`
	MaxScore        int    `json:"max_score"`
	Tier            Tier   `json:"tier"`
	Color           string `json:"color"`
	BackgroundColor string `json:"background_color"`
	Description     string `json:"description"`
	Recommendation  string `json:"recommendation"`
}

// Score sums the weight of each answered option in question order. Missing
// answers and values that match no option contribute nothing.
func Score(answers Answers, questions []Question) Result {
	total := 0
	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		if opt, found := q.Option(value); found {
			total += opt.Score
		}
	}

	in := Interpret(total)
	return Result{
		Score:           total,
		MaxScore:        MaxScore(questions),
		Tier:            in.Tier,
		Color:           in.Color,
		BackgroundColor: in.BackgroundColor,
		Description:     in.Description,
		Recommendation:  in.Recommendation,
	}
}

// MaxScore is the highest total the questions can produce.
func MaxScore(questions []Question) int {
	max := 0
	for _, q := range questions {
		max += q.MaxWeight()
	}
	return max
}

// Progress reports completion percentage for the question at index.
func Progress(index, total int) float64 {
	if total <= 0 {
		return 100
	}
	return float64(index+1) / float64(total) * 100
}
