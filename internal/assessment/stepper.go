package assessment

import (
	"errors"
	"fmt"
)

var (
	// ErrUnanswered is returned when advancing past a question with no answer.
	ErrUnanswered = errors.New("assessment: current question is unanswered")
	// ErrFirstQuestion is returned when stepping back from the first question.
	ErrFirstQuestion = errors.New("assessment: already at the first question")
	// ErrCompleted is returned for question navigation once results are shown.
	ErrCompleted = errors.New("assessment: assessment already completed")
	// ErrNotCompleted is returned when retaking before results exist.
	ErrNotCompleted = errors.New("assessment: assessment not completed")
	// ErrUnknownOption is returned when an answer is not one of the question's options.
	ErrUnknownOption = errors.New("assessment: unknown option")
)

// State is a serialisable snapshot of a Stepper.
type State struct {
	Current   int     `json:"current"`
	Answers   Answers `json:"answers"`
	Completed bool    `json:"completed"`
	Result    *Result `json:"result,omitempty"`
}

// Stepper walks a respondent through the questions one at a time and scores
// them once the last one is answered.
type Stepper struct {
	questions []Question
	current   int
	answers   Answers
	result    *Result
}

// NewStepper starts at the first question with no answers. With no
// questions the stepper opens directly on an empty result.
func NewStepper(questions []Question) *Stepper {
	s := &Stepper{questions: questions, answers: Answers{}}
	if len(questions) == 0 {
		s.finish()
	}
	return s
}

// RestoreStepper rebuilds a stepper from a stored snapshot.
func RestoreStepper(questions []Question, state State) (*Stepper, error) {
	if state.Current < 0 || (len(questions) > 0 && state.Current >= len(questions)) {
		return nil, fmt.Errorf("assessment: snapshot index %d out of range", state.Current)
	}
	s := &Stepper{
		questions: questions,
		current:   state.Current,
		answers:   state.Answers.Clone(),
	}
	if state.Completed {
		s.finish()
	}
	return s, nil
}

// Completed reports whether the stepper is showing results.
func (s *Stepper) Completed() bool { return s.result != nil }

// Index is the zero-based position of the current question.
func (s *Stepper) Index() int { return s.current }

// Total is the number of questions.
func (s *Stepper) Total() int { return len(s.questions) }

// Question returns the current question; false once completed.
func (s *Stepper) Question() (Question, bool) {
	if s.Completed() || len(s.questions) == 0 {
		return Question{}, false
	}
	return s.questions[s.current], true
}

// Selected returns the answer recorded for the current question.
func (s *Stepper) Selected() string {
	q, ok := s.Question()
	if !ok {
		return ""
	}
	return s.answers[q.ID]
}

// Progress is the completion percentage shown next to the current question.
func (s *Stepper) Progress() float64 {
	return Progress(s.current, len(s.questions))
}

// CanGoBack mirrors the enabled state of the Previous control.
func (s *Stepper) CanGoBack() bool {
	return !s.Completed() && s.current > 0
}

// CanAdvance mirrors the enabled state of the Next control.
func (s *Stepper) CanAdvance() bool {
	return !s.Completed() && s.Selected() != ""
}

// IsLast reports whether the current question is the final one.
func (s *Stepper) IsLast() bool {
	return s.current == len(s.questions)-1
}

// Answer records value for the current question, replacing any prior answer.
func (s *Stepper) Answer(value string) error {
	q, ok := s.Question()
	if !ok {
		return ErrCompleted
	}
	if _, found := q.Option(value); !found {
		return fmt.Errorf("%w %q for question %s", ErrUnknownOption, value, q.ID)
	}
	s.answers[q.ID] = value
	return nil
}

// Next moves to the following question, or to results from the last one.
func (s *Stepper) Next() error {
	if s.Completed() {
		return ErrCompleted
	}
	if s.Selected() == "" {
		return ErrUnanswered
	}
	if s.IsLast() {
		s.finish()
		return nil
	}
	s.current++
	return nil
}

// Previous moves back one question. Answers are kept.
func (s *Stepper) Previous() error {
	if s.Completed() {
		return ErrCompleted
	}
	if s.current == 0 {
		return ErrFirstQuestion
	}
	s.current--
	return nil
}

// Retake clears every answer and returns to the first question.
func (s *Stepper) Retake() error {
	if !s.Completed() {
		return ErrNotCompleted
	}
	s.current = 0
	s.answers = Answers{}
	s.result = nil
	if len(s.questions) == 0 {
		s.finish()
	}
	return nil
}

// Result returns the computed result once completed.
func (s *Stepper) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// State snapshots the stepper. The returned answers are a copy.
func (s *Stepper) State() State {
	st := State{
		Current:   s.current,
		Answers:   s.answers.Clone(),
		Completed: s.Completed(),
	}
	if s.result != nil {
		res := *s.result
		st.Result = &res
	}
	return st
}

func (s *Stepper) finish() {
	res := Score(s.answers, s.questions)
	s.result = &res
}
