package session

// Stats counts the answers given during one session. Every recorded answer
// increments TotalReviewed exactly once.
type Stats struct {
	TotalReviewed int
	Correct       int
	Incorrect     int
	UserOverrides int
}

// RecordCorrect records an answer accepted automatically.
func (s *Stats) RecordCorrect() {
	s.TotalReviewed++
	s.Correct++
}

// RecordIncorrect records an answer rejected automatically.
func (s *Stats) RecordIncorrect() {
	s.TotalReviewed++
	s.Incorrect++
}

// RecordOverride records an answer the learner judged themselves.
func (s *Stats) RecordOverride(wasCorrect bool) {
	s.TotalReviewed++
	s.UserOverrides++
	if wasCorrect {
		s.Correct++
	} else {
		s.Incorrect++
	}
}

// Accuracy returns the percentage of correct answers, or 0 when nothing has
// been reviewed.
func (s Stats) Accuracy() float64 {
	if s.TotalReviewed == 0 {
		return 0.0
	}
	return 100.0 * float64(s.Correct) / float64(s.TotalReviewed)
}
