// Package spacedrep schedules reviews with Leitner boxes.
//
// Every item lives in exactly one of a fixed number of boxes. Box 0 holds
// items the learner still struggles with and the last box holds mastered
// items. A correct answer moves an item one box up, a wrong answer sends it
// back to box 0, and the next item to review is always taken from the front
// of the lowest non-empty box.
//
// Items are referred to by their zero-based index in the learning set. The
// scheduler never sees item content. A Scheduler is not safe for concurrent
// use; one session owns one scheduler.
package spacedrep

// Scheduler tracks which Leitner box each item is in.
type Scheduler struct {
	boxes    []box
	location []int // item id -> box index
}

// NewScheduler creates a scheduler with numBoxes boxes and numItems items,
// all placed in box 0 in ascending id order. numBoxes below 1 is raised to 1
// and a negative numItems is treated as zero.
func NewScheduler(numBoxes, numItems int) *Scheduler {
	numBoxes = max(numBoxes, 1)
	numItems = max(numItems, 0)

	s := &Scheduler{
		boxes:    make([]box, numBoxes),
		location: make([]int, numItems),
	}
	s.Reset()
	return s
}

// NumBoxes returns the number of boxes.
func (s *Scheduler) NumBoxes() int { return len(s.boxes) }

// NumItems returns the number of scheduled items.
func (s *Scheduler) NumItems() int { return len(s.location) }

func (s *Scheduler) lastBox() int { return len(s.boxes) - 1 }

func (s *Scheduler) valid(id int) bool {
	return id >= 0 && id < len(s.location)
}

// AnswerCorrect moves the item to the back of the next box up. An item that
// is already mastered is re-enqueued at the back of the last box. Unknown ids
// are ignored.
func (s *Scheduler) AnswerCorrect(id int) {
	if !s.valid(id) {
		return
	}
	s.move(id, min(s.location[id]+1, s.lastBox()))
}

// AnswerIncorrect moves the item to the back of box 0. Unknown ids are
// ignored.
func (s *Scheduler) AnswerIncorrect(id int) {
	if !s.valid(id) {
		return
	}
	s.move(id, 0)
}

func (s *Scheduler) move(id, to int) {
	s.boxes[s.location[id]].remove(id)
	s.boxes[to].push(id)
	s.location[id] = to
}

// Reset puts every item back into box 0 in ascending id order.
func (s *Scheduler) Reset() {
	for i := range s.boxes {
		s.boxes[i].clear()
	}
	for id := range s.location {
		s.boxes[0].push(id)
		s.location[id] = 0
	}
}

// NextItem returns the item at the front of the lowest non-empty box. It
// reports false only when there are no items at all.
func (s *Scheduler) NextItem() (int, bool) {
	for i := range s.boxes {
		if id, ok := s.boxes[i].front(); ok {
			return id, true
		}
	}
	return 0, false
}

// ItemBox returns the box the item is in, or false for an unknown id.
func (s *Scheduler) ItemBox(id int) (int, bool) {
	if !s.valid(id) {
		return 0, false
	}
	return s.location[id], true
}

// BoxCounts returns the number of items in each box, in box order.
func (s *Scheduler) BoxCounts() []int {
	counts := make([]int, len(s.boxes))
	for i := range s.boxes {
		counts[i] = s.boxes[i].len()
	}
	return counts
}

// RemainingItems returns the number of items across all boxes. It always
// equals NumItems.
func (s *Scheduler) RemainingItems() int {
	n := 0
	for i := range s.boxes {
		n += s.boxes[i].len()
	}
	return n
}

// AllMastered reports whether every item is in the last box. It is true for
// a scheduler with no items.
func (s *Scheduler) AllMastered() bool {
	return s.boxes[s.lastBox()].len() == len(s.location)
}

// Summary returns a snapshot of progress through the boxes.
func (s *Scheduler) Summary() Summary {
	mastered := s.boxes[s.lastBox()].len()
	return Summary{
		TotalItems:      len(s.location),
		MasteredItems:   mastered,
		InProgressItems: len(s.location) - mastered,
		BoxCounts:       s.BoxCounts(),
	}
}
