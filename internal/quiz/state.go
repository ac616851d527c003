// Package quiz implements the two-pass multiple-choice drill over a word set.
//
// A session is an immutable State advanced by Reduce. Runner wraps a State
// for interactive use and owns the delayed advance after each answer.
package quiz

import (
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// MinWords is the smallest word set a session can be built from: one correct
// option and two distractors.
const MinWords = 3

// OptionsPerQuestion is the number of answer options of every question.
const OptionsPerQuestion = 3

// Stage is the position of a session in its two passes.
type Stage int

const (
	// Direction1Active prompts in Chinese and offers German options.
	Direction1Active Stage = iota
	// Direction2Active prompts in German and offers Chinese options.
	Direction2Active
	// Completed is reached after both passes.
	Completed
)

func (s Stage) String() string {
	switch s {
	case Direction1Active:
		return "chinese_to_german"
	case Direction2Active:
		return "german_to_chinese"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Option is one answer choice.
type Option struct {
	Text    string
	Correct bool
}

// Question is the prompt for the word at the current index.
type Question struct {
	WordID  uuid.UUID
	Prompt  string
	Options []Option
}

// CorrectIndex returns the position of the correct option.
func (q Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o.Correct {
			return i
		}
	}
	return -1
}

// Feedback records the answer given to the current question.
type Feedback struct {
	Option  int
	Correct bool
}

// State is one immutable snapshot of a session. The zero value is not a
// valid session; use New.
type State struct {
	words    []domain.Word
	stage    Stage
	index    int
	question *Question
	feedback *Feedback
	correct  int
	answered int
	round    int
}

// Stage returns the current stage.
func (s State) Stage() Stage { return s.stage }

// Index returns the position of the current word within the active pass.
func (s State) Index() int { return s.index }

// Words returns the word order of the active pass.
func (s State) Words() []domain.Word { return slices.Clone(s.words) }

// Len returns the number of words in the session.
func (s State) Len() int { return len(s.words) }

// Total returns the number of questions of a full session.
func (s State) Total() int { return 2 * len(s.words) }

// Correct returns the number of correct answers in the current round.
func (s State) Correct() int { return s.correct }

// Answered returns the number of answers given in the current round.
func (s State) Answered() int { return s.answered }

// Round counts restarts, starting at 1.
func (s State) Round() int { return s.round }

// Completed reports whether both passes are done.
func (s State) Completed() bool { return s.stage == Completed }

// Question returns the pending question. ok is false once completed.
func (s State) Question() (q Question, ok bool) {
	if s.question == nil {
		return Question{}, false
	}
	q = *s.question
	q.Options = slices.Clone(q.Options)
	return q, true
}

// Feedback returns the answer to the current question, if one was given.
func (s State) Feedback() (f Feedback, ok bool) {
	if s.feedback == nil {
		return Feedback{}, false
	}
	return *s.feedback, true
}
