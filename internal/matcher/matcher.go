// Package matcher decides whether a typed answer counts as correct.
//
// Answers are compared after trimming surrounding whitespace and Unicode case
// folding. Exact matches are always accepted; anything else is scored with
// Jaro-Winkler similarity and sorted into accept, reject, or ask-the-learner
// depending on where the score falls relative to the threshold and its
// decision band.
package matcher

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// Defaults used when no configuration is supplied.
const (
	DefaultThreshold      = 0.85
	DefaultDecisionMargin = 0.10
)

// MaxDecisionMargin is the widest allowed half-width of the decision band.
const MaxDecisionMargin = 0.5

// Matcher compares answers against a similarity threshold. It holds no
// mutable state and may be shared freely.
type Matcher struct {
	threshold      float64
	decisionMargin float64
}

// New creates a Matcher. threshold is clamped to [0, 1] and decisionMargin
// to [0, 0.5]; out-of-range values are never rejected.
func New(threshold, decisionMargin float64) *Matcher {
	return &Matcher{
		threshold:      clamp(threshold, 0, 1),
		decisionMargin: clamp(decisionMargin, 0, MaxDecisionMargin),
	}
}

// Default returns a Matcher with DefaultThreshold and DefaultDecisionMargin.
func Default() *Matcher {
	return New(DefaultThreshold, DefaultDecisionMargin)
}

// Threshold returns the similarity at or above which answers are similar.
func (m *Matcher) Threshold() float64 { return m.threshold }

// DecisionMargin returns the half-width of the band around the threshold.
func (m *Matcher) DecisionMargin() float64 { return m.decisionMargin }

// CheckAnswer compares the learner's input with the correct answer.
func (m *Matcher) CheckAnswer(userInput, correctAnswer string) Verdict {
	a := normalize(userInput)
	b := normalize(correctAnswer)

	if a == b {
		return AutoCorrect{Score: 1.0}
	}

	score := JaroWinkler(a, b)
	upper := m.threshold + m.decisionMargin
	lower := max(0, m.threshold-m.decisionMargin)

	switch {
	case score >= upper:
		return AutoCorrect{Score: score}
	case score < lower:
		return AutoIncorrect{Score: score}
	default:
		return NeedsUserDecision{
			Score:         score,
			UserInput:     userInput,
			CorrectAnswer: correctAnswer,
		}
	}
}

// Similarity returns the raw similarity score of a and b after
// normalization.
func (m *Matcher) Similarity(a, b string) float64 {
	return JaroWinkler(normalize(a), normalize(b))
}

// IsSimilar reports whether a and b score at or above the threshold.
func (m *Matcher) IsSimilar(a, b string) bool {
	return m.Similarity(a, b) >= m.threshold
}

// normalize trims surrounding whitespace and case-folds s.
func normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return min(max(v, lo), hi)
}
