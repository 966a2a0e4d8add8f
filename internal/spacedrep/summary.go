package spacedrep

// Summary is a point-in-time view of a scheduler.
type Summary struct {
	TotalItems      int
	MasteredItems   int
	InProgressItems int
	BoxCounts       []int
}

// MasteryPercentage returns the share of items in the last box, from 0 to
// 100. It is 0 when there are no items.
func (s Summary) MasteryPercentage() float64 {
	if s.TotalItems == 0 {
		return 0.0
	}
	return 100.0 * float64(s.MasteredItems) / float64(s.TotalItems)
}
