package spacedrep

import "slices"

// box is a FIFO queue of item ids.
type box struct {
	ids []int
}

func (b *box) push(id int) {
	b.ids = append(b.ids, id)
}

// front returns the id at the head of the queue.
func (b *box) front() (int, bool) {
	if len(b.ids) == 0 {
		return 0, false
	}
	return b.ids[0], true
}

// remove deletes id from the queue, keeping the order of the others.
func (b *box) remove(id int) bool {
	i := slices.Index(b.ids, id)
	if i < 0 {
		return false
	}
	b.ids = slices.Delete(b.ids, i, i+1)
	return true
}

func (b *box) len() int { return len(b.ids) }

func (b *box) clear() { b.ids = b.ids[:0] }
