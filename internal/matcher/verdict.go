package matcher

import "fmt"

// Verdict is the outcome of comparing a learner's answer with the expected
// answer. It is one of AutoCorrect, AutoIncorrect or NeedsUserDecision;
// callers switch on the concrete type.
type Verdict interface {
	// MatchScore returns the similarity score in [0, 1].
	MatchScore() float64

	isVerdict()
}

// AutoCorrect means the answer is accepted without asking the learner.
type AutoCorrect struct {
	Score float64
}

// AutoIncorrect means the answer is rejected without asking the learner.
type AutoIncorrect struct {
	Score float64
}

// NeedsUserDecision means the score fell inside the decision band and the
// learner has to say whether the answer should count. UserInput and
// CorrectAnswer hold the strings exactly as they were passed in.
type NeedsUserDecision struct {
	Score         float64
	UserInput     string
	CorrectAnswer string
}

func (v AutoCorrect) MatchScore() float64       { return v.Score }
func (v AutoIncorrect) MatchScore() float64     { return v.Score }
func (v NeedsUserDecision) MatchScore() float64 { return v.Score }

func (AutoCorrect) isVerdict()       {}
func (AutoIncorrect) isVerdict()     {}
func (NeedsUserDecision) isVerdict() {}

// Accepted reports whether v settles the answer on its own. decided is false
// for NeedsUserDecision, in which case accepted carries no meaning.
func Accepted(v Verdict) (accepted, decided bool) {
	switch v.(type) {
	case AutoCorrect:
		return true, true
	case AutoIncorrect:
		return false, true
	default:
		return false, false
	}
}

// Describe renders a verdict as a feedback line for the learner.
func Describe(v Verdict) string {
	switch v := v.(type) {
	case AutoCorrect:
		return fmt.Sprintf("✓ Correct! (match: %.1f%%)", v.Score*100)
	case AutoIncorrect:
		return fmt.Sprintf("✗ Wrong (match: %.1f%%)", v.Score*100)
	case NeedsUserDecision:
		return fmt.Sprintf(
			"? Unsure (match: %.1f%%)\n  Your answer: '%s'\n  Correct answer: '%s'\n  Was your answer correct?",
			v.Score*100, v.UserInput, v.CorrectAnswer,
		)
	default:
		return ""
	}
}
