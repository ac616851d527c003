package quiz

import (
	"errors"
	"fmt"
	"slices"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// ErrInvalidTransition is returned when an event does not apply to the
// current state, e.g. answering twice or advancing before an answer.
var ErrInvalidTransition = errors.New("quiz: invalid transition")

// Rand is the randomness source of a session. *rand.Rand from math/rand/v2
// satisfies it. Shuffle must produce a uniform permutation.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Event is an input to Reduce.
type Event interface {
	event()
}

// Answer selects the option at index Option of the pending question.
type Answer struct {
	Option int
}

// Advance moves past an answered question.
type Advance struct{}

// Restart reshuffles and returns to the first pass with cleared counters.
type Restart struct{}

func (Answer) event()  {}
func (Advance) event() {}
func (Restart) event() {}

// New starts a session over words in a random order. It fails with a
// validation error when fewer than MinWords words are given.
func New(words []domain.Word, rnd Rand) (State, error) {
	if len(words) < MinWords {
		return State{}, domain.NewValidationError("words", fmt.Sprintf("at least %d words required", MinWords))
	}

	s := State{
		words: shuffled(words, rnd),
		stage: Direction1Active,
		round: 1,
	}
	s.question = ask(s.words, s.index, s.stage, rnd)
	return s, nil
}

// Reduce applies e to s and returns the next state. s is never modified.
func Reduce(s State, e Event, rnd Rand) (State, error) {
	switch e := e.(type) {
	case Answer:
		return answer(s, e.Option)
	case Advance:
		return advance(s, rnd)
	case Restart:
		return restart(s, rnd), nil
	default:
		return s, fmt.Errorf("%w: unknown event %T", ErrInvalidTransition, e)
	}
}

func answer(s State, option int) (State, error) {
	if s.question == nil {
		return s, fmt.Errorf("%w: session completed", ErrInvalidTransition)
	}
	if s.feedback != nil {
		return s, fmt.Errorf("%w: question already answered", ErrInvalidTransition)
	}
	if option < 0 || option >= len(s.question.Options) {
		return s, domain.NewValidationError("option", fmt.Sprintf("must be between 0 and %d", len(s.question.Options)-1))
	}

	correct := s.question.Options[option].Correct
	s.feedback = &Feedback{Option: option, Correct: correct}
	s.answered++
	if correct {
		s.correct++
	}
	return s, nil
}

func advance(s State, rnd Rand) (State, error) {
	if s.stage == Completed {
		return s, fmt.Errorf("%w: session completed", ErrInvalidTransition)
	}
	if s.feedback == nil {
		return s, fmt.Errorf("%w: question not answered", ErrInvalidTransition)
	}

	s.feedback = nil
	s.index++

	if s.index >= len(s.words) {
		if s.stage == Direction2Active {
			s.stage = Completed
			s.question = nil
			return s, nil
		}
		s.stage = Direction2Active
		s.index = 0
		s.words = shuffled(s.words, rnd)
	}

	s.question = ask(s.words, s.index, s.stage, rnd)
	return s, nil
}

func restart(s State, rnd Rand) State {
	next := State{
		words: shuffled(s.words, rnd),
		stage: Direction1Active,
		round: s.round + 1,
	}
	next.question = ask(next.words, next.index, next.stage, rnd)
	return next
}

// shuffled returns a uniformly permuted copy of words.
func shuffled(words []domain.Word, rnd Rand) []domain.Word {
	out := slices.Clone(words)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// ask builds the question for words[idx]: the correct option plus two
// distractors drawn uniformly without replacement from the other words, in
// random display order.
func ask(words []domain.Word, idx int, stage Stage, rnd Rand) *Question {
	target := words[idx]

	others := make([]int, 0, len(words)-1)
	for i := range words {
		if i != idx {
			others = append(others, i)
		}
	}
	// Partial Fisher-Yates: the first two slots end up uniformly sampled.
	for k := 0; k < OptionsPerQuestion-1; k++ {
		j := k + rnd.IntN(len(others)-k)
		others[k], others[j] = others[j], others[k]
	}

	prompt, expected := sides(target, stage)
	options := make([]Option, 0, OptionsPerQuestion)
	options = append(options, Option{Text: expected, Correct: true})
	for _, i := range others[:OptionsPerQuestion-1] {
		_, text := sides(words[i], stage)
		options = append(options, Option{Text: text})
	}
	rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Question{WordID: target.ID, Prompt: prompt, Options: options}
}

// sides returns the prompt text and the expected answer text of w.
func sides(w domain.Word, stage Stage) (prompt, answer string) {
	if stage == Direction2Active {
		return w.German, w.Chinese
	}
	return w.Chinese, w.German
}
